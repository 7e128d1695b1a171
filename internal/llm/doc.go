// Package llm provides the AI structuring extractor that turns raw receipt
// OCR text into a validated structured record. It supports multiple
// generation backends (Gemini, OpenAI, Anthropic) behind one client
// interface, with rate limiting and response caching. Backend output is
// treated as untrusted free text: all parsing and schema validation happens
// here, and any violation is an *ExtractionError so the caller can fall
// back to the rule-based path.
package llm
