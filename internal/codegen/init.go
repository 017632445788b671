package codegen

// DefaultRegistry is the global registry instance. Language packages
// register themselves from their init functions; see rustlang.
var DefaultRegistry = NewRegistry()
