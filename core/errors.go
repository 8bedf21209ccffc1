package core

import "fmt"

// The error taxonomy below mirrors the absorption layers of the assistant:
// tool failures are absorbed inside the tool boundary, agent failures inside
// the agent boundary, and everything else is converted exactly once at the
// orchestrator boundary. Errors carry the component name and free-form detail
// so absorption points can log the original cause before degrading to a
// user-facing sentence.

// AgentError reports a failure inside an agent's decision loop (oracle call
// or directive parsing).
type AgentError struct {
	Agent   string
	Message string
	Cause   error
}

func (e *AgentError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("agent error [%s]: %s: %v", e.Agent, e.Message, e.Cause)
	}
	return fmt.Sprintf("agent error [%s]: %s", e.Agent, e.Message)
}

// Unwrap returns the underlying cause for errors.Is / errors.As chains.
func (e *AgentError) Unwrap() error { return e.Cause }

// NewAgentError creates an AgentError for the named agent.
func NewAgentError(agent, message string, cause error) *AgentError {
	return &AgentError{Agent: agent, Message: message, Cause: cause}
}

// ToolError reports a failure inside a tool's domain operation.
type ToolError struct {
	Tool    string
	Message string
	Cause   error
}

func (e *ToolError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("tool error [%s]: %s: %v", e.Tool, e.Message, e.Cause)
	}
	return fmt.Sprintf("tool error [%s]: %s", e.Tool, e.Message)
}

// Unwrap returns the underlying cause.
func (e *ToolError) Unwrap() error { return e.Cause }

// NewToolError creates a ToolError for the named tool.
func NewToolError(tool, message string, cause error) *ToolError {
	return &ToolError{Tool: tool, Message: message, Cause: cause}
}

// LocationError reports that no usable location could be resolved or looked up.
type LocationError struct {
	Location string
	Message  string
	Cause    error
}

func (e *LocationError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("location error [%s]: %s: %v", e.Location, e.Message, e.Cause)
	}
	return fmt.Sprintf("location error [%s]: %s", e.Location, e.Message)
}

// Unwrap returns the underlying cause.
func (e *LocationError) Unwrap() error { return e.Cause }

// NewLocationError creates a LocationError for the given place name.
func NewLocationError(location, message string, cause error) *LocationError {
	return &LocationError{Location: location, Message: message, Cause: cause}
}

// OracleError reports that the LLM oracle call itself failed.
type OracleError struct {
	Provider string
	Message  string
	Cause    error
}

func (e *OracleError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("oracle error [%s]: %s: %v", e.Provider, e.Message, e.Cause)
	}
	return fmt.Sprintf("oracle error [%s]: %s", e.Provider, e.Message)
}

// Unwrap returns the underlying cause.
func (e *OracleError) Unwrap() error { return e.Cause }

// NewOracleError creates an OracleError for the named provider.
func NewOracleError(provider, message string, cause error) *OracleError {
	return &OracleError{Provider: provider, Message: message, Cause: cause}
}

// ParseError reports that an oracle reply could not be turned into a valid
// action directive. Raw carries the offending reply text for diagnosis.
type ParseError struct {
	Message string
	Raw     string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error: %s", e.Message)
}

// NewParseError creates a ParseError preserving the raw oracle reply.
func NewParseError(message, raw string) *ParseError {
	return &ParseError{Message: message, Raw: raw}
}

// OrchestratorError reports a failure that escaped every inner absorption
// boundary and reached the orchestrator.
type OrchestratorError struct {
	Message string
	Cause   error
}

func (e *OrchestratorError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("orchestrator error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("orchestrator error: %s", e.Message)
}

// Unwrap returns the underlying cause.
func (e *OrchestratorError) Unwrap() error { return e.Cause }

// NewOrchestratorError creates an OrchestratorError.
func NewOrchestratorError(message string, cause error) *OrchestratorError {
	return &OrchestratorError{Message: message, Cause: cause}
}
