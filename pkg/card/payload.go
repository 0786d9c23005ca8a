package card

// Payload is the content-specific data attached to a card. The engine never
// inspects it. Implementations report the card type they belong to so that an
// encoder can tag them.
type Payload interface {
	CardType() Type
}

// ChatPayload links a chat card to its conversation.
type ChatPayload struct {
	SessionID string `json:"session_id"`
	Model     string `json:"model,omitempty"`
}

func (*ChatPayload) CardType() Type { return TypeChat }

// TerminalPayload links a terminal card to a shell session.
type TerminalPayload struct {
	SessionID string `json:"session_id"`
	Cwd       string `json:"cwd,omitempty"`
	Shell     string `json:"shell,omitempty"`
}

func (*TerminalPayload) CardType() Type { return TypeTerminal }

// AgentPayload describes a subagent card spawned from a parent session.
type AgentPayload struct {
	ParentSessionID string `json:"parent_session_id"`
	Agent           string `json:"agent"`
}

func (*AgentPayload) CardType() Type { return TypeSubagent }

// ProjectPayload points a project card at a directory.
type ProjectPayload struct {
	Path string `json:"path"`
}

func (*ProjectPayload) CardType() Type { return TypeProject }

// StudioPayload carries the generation request of a media studio card.
type StudioPayload struct {
	Medium Type   `json:"-"`
	Prompt string `json:"prompt,omitempty"`
	Model  string `json:"model,omitempty"`
}

func (p *StudioPayload) CardType() Type {
	if p.Medium == "" {
		return TypeImageStudio
	}
	return p.Medium
}

// OpaquePayload holds free-form fields for card types without a dedicated
// payload struct.
type OpaquePayload struct {
	Kind   Type
	Fields map[string]any
}

func (p *OpaquePayload) CardType() Type { return p.Kind }
