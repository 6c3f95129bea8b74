package generation

// Turn is one role/text entry in a conversation.
type Turn struct {
	Role string `json:"role"`
	Text string `json:"content"`
}

const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Conversation is the ordered prompt/response history threaded through a
// staged generation run to preserve context across calls.
type Conversation struct {
	turns []Turn
}

func (c *Conversation) Append(role, text string) {
	c.turns = append(c.turns, Turn{Role: role, Text: text})
}

// Exchange records one user prompt and the assistant response it produced.
func (c *Conversation) Exchange(prompt, response string) {
	c.Append(RoleUser, prompt)
	c.Append(RoleAssistant, response)
}

// Turns returns a copy of the history so callers cannot mutate it in place.
func (c *Conversation) Turns() []Turn {
	out := make([]Turn, len(c.turns))
	copy(out, c.turns)
	return out
}

// Head returns the first n turns, or everything if fewer exist. The research
// flow uses this to keep only the opening exchange in the rolling window.
func (c *Conversation) Head(n int) []Turn {
	if n > len(c.turns) {
		n = len(c.turns)
	}
	out := make([]Turn, n)
	copy(out, c.turns[:n])
	return out
}

func (c *Conversation) Len() int { return len(c.turns) }
