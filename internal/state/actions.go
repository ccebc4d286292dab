package state

// Action is the base interface for all navigation commands
type Action interface{}

// ===== NAVIGATION ACTIONS =====

type NextAction struct{}
type PreviousAction struct{}
type EnterAction struct{}
type BackAction struct{}
type RefreshAction struct{}

// ===== APPLICATION ACTIONS =====
// Handled by the application, never by the Controller.

type OpenInFileManagerAction struct{}
type QuitAction struct{}
