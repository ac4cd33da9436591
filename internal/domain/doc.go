// Package domain contains the core entities of the MyWorld application:
// users, the assessment catalog (dimensions, questions, answer options),
// assessment sessions with their recorded responses, and the user's
// appointments and reminders.
//
// Entities are created through NewX constructors that validate invariants at
// construction time; stores persist them without re-interpreting them.
package domain
