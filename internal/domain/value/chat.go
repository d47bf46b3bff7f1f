package value

type ChatRole string

const (
	ChatRoleUser      ChatRole = "user"
	ChatRoleAssistant ChatRole = "assistant"
)

type ChatMessage struct {
	Role      ChatRole
	Content   string
	Timestamp string
}

// Refinement всё, что нужно для ответа в чате уточнения.
type Refinement struct {
	Criteria    Criteria
	Suggestions []Suggestion
	History     []ChatMessage
}

// Latest возвращает последнее сообщение истории.
func (r Refinement) Latest() (ChatMessage, bool) {
	if len(r.History) == 0 {
		return ChatMessage{}, false
	}

	return r.History[len(r.History)-1], true
}

// Earlier возвращает историю без последнего сообщения.
func (r Refinement) Earlier() []ChatMessage {
	if len(r.History) == 0 {
		return nil
	}

	return r.History[:len(r.History)-1]
}
