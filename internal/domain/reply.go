package domain

type ReplyKind string

const (
	ReplyText  ReplyKind = "TEXT"
	ReplyImage ReplyKind = "IMAGE"
)

// Reply is what a plugin hands back to the host for delivery. Content is
// plain text for ReplyText and an image URL for ReplyImage.
type Reply struct {
	Kind    ReplyKind
	Content string
}

func TextReply(text string) Reply {
	return Reply{Kind: ReplyText, Content: text}
}

func ImageReply(url string) Reply {
	return Reply{Kind: ReplyImage, Content: url}
}
