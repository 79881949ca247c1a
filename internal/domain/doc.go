// Package domain contains the core entities of the card generation
// pipeline: generation requests, card records, and decks.
package domain
