package commands

import (
	"errors"

	"orderboard/internal/pkg/guard"
)

var ErrExpireTrialsCommandIsNotConstructed = errors.New(
	"ExpireTrialsCommand must be created via NewExpireTrialsCommand constructor",
)

// ExpireTrialsCommand deactivates every merchant whose trial has run out.
// The trial expiry job issues it once a day.
type ExpireTrialsCommand struct {
	guard guard.ConstructorGuard
}

// NewExpireTrialsCommand creates a parameterless trial expiry command.
func NewExpireTrialsCommand() ExpireTrialsCommand {
	return ExpireTrialsCommand{
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
func (c ExpireTrialsCommand) Validate() error {
	return c.guard.Validate(ErrExpireTrialsCommandIsNotConstructed)
}
