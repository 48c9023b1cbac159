// Package domain defines core data models and interfaces shared across the app.
// It contains plain types, contracts and the error kinds surfaced to users.
package domain
