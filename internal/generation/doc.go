// Package generation provides the interface and pure building blocks for
// generating flashcard decks with an external language model: the prompt
// builder, the response parser, and the Generator boundary interface. It
// abstracts the details of the LLM API integration (Gemini), allowing the
// application to generate decks without coupling to a specific service.
package generation
