package entity

type MessageRole string

const (
	MessageSystem    MessageRole = "system"
	MessageUser      MessageRole = "user"
	MessageAssistant MessageRole = "assistant"
)

type Message struct {
	Role    MessageRole
	Content string
}

func UserMessage(content string) Message {
	return Message{Role: MessageUser, Content: content}
}
