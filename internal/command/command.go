package command

import "strings"

const (
	ImagePrefix    = "$ht "
	SetModelPrefix = "$setmodel "
)

type Kind int

const (
	None Kind = iota
	Image
	SetModel
)

func (k Kind) String() string {
	switch k {
	case Image:
		return "image"
	case SetModel:
		return "setmodel"
	default:
		return "none"
	}
}

// Command is a parsed chat command. Arg is the text after the prefix,
// unmodified and possibly empty.
type Command struct {
	Kind Kind
	Arg  string
}

// Parse classifies trimmed message content. Prefixes are matched in order
// and the first match wins; anything else is None.
func Parse(content string) Command {
	content = strings.TrimSpace(content)

	switch {
	case strings.HasPrefix(content, ImagePrefix):
		return Command{Kind: Image, Arg: content[len(ImagePrefix):]}
	case strings.HasPrefix(content, SetModelPrefix):
		return Command{Kind: SetModel, Arg: content[len(SetModelPrefix):]}
	default:
		return Command{Kind: None}
	}
}
