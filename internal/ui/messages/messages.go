package messages

// PasswordEnteredMsg przenosi hasło główne wpisane w widoku odblokowania.
type PasswordEnteredMsg string

// PromptCancelledMsg sygnalizuje przerwanie widoku odblokowania.
type PromptCancelledMsg struct{}
