// Package prompt provides a centralized prompt library for LLM interactions.
// Templates are authored as YAML fixtures under templates/ and loaded at
// startup, making it easy to tune a group's extraction prompt without a
// code change.
package prompt

// PromptTemplate represents a reusable prompt with metadata
type PromptTemplate struct {
	ID               string           `yaml:"id"`                   // Unique identifier (e.g., "extraction.ihc")
	Name             string           `yaml:"name"`                 // Human-readable name
	Category         string           `yaml:"category"`             // Category (extraction, classification)
	Description      string           `yaml:"description"`          // Description of prompt purpose
	SystemPrompt     string           `yaml:"system_prompt"`        // The system prompt content
	UserPromptTmpl   string           `yaml:"user_prompt_template"` // Go template for user prompt
	Variables        []PromptVariable `yaml:"variables"`            // Variables used in template
	Version          string           `yaml:"version"`              // Version for tracking changes
}

// PromptVariable defines a variable used in a prompt template
type PromptVariable struct {
	Name        string `yaml:"name"`        // Variable name (e.g., "section_text")
	Type        string `yaml:"type"`        // Type: string, int, float, array, object
	Description string `yaml:"description"` // What this variable represents
	Required    bool   `yaml:"required"`    // Whether this variable is required
	Default     string `yaml:"default"`     // Default value if not provided
}

// PromptExecutionContext holds runtime values for prompt execution
type PromptExecutionContext struct {
	Variables map[string]interface{} // Key-value pairs for template substitution
}

// NewContext creates a new execution context
func NewContext() *PromptExecutionContext {
	return &PromptExecutionContext{
		Variables: make(map[string]interface{}),
	}
}

// Set adds a variable to the context
func (c *PromptExecutionContext) Set(key string, value interface{}) *PromptExecutionContext {
	c.Variables[key] = value
	return c
}
