package domain

import "fmt"

// MediaKind enumerates the rich-media item kinds a channel can deliver.
type MediaKind string

const (
	MediaAudio     MediaKind = "audio"
	MediaContact   MediaKind = "contact"
	MediaDocument  MediaKind = "document"
	MediaLocation  MediaKind = "location"
	MediaPhoto     MediaKind = "photo"
	MediaSticker   MediaKind = "sticker"
	MediaVenue     MediaKind = "venue"
	MediaVideo     MediaKind = "video"
	MediaVideoNote MediaKind = "video_note"
	MediaVoice     MediaKind = "voice"
)

// captionable lists the kinds that accept a caption. Pairing a caption with
// any other kind is a configuration error.
var captionable = map[MediaKind]bool{
	MediaAudio:    true,
	MediaDocument: true,
	MediaPhoto:    true,
	MediaVideo:    true,
	MediaVoice:    true,
}

// ParseMode selects the text markup interpretation for the channel.
type ParseMode string

const (
	ParseModeNone     ParseMode = ""
	ParseModeMarkdown ParseMode = "markdown"
	ParseModeHTML     ParseMode = "html"
)

// Payload is outbound content: plain text, a single media item with an
// optional caption, or an ordered sequence of either. When a Sequence is
// sent, all but the last item go out silently with a typing indicator in
// between, and only the last item carries the keyboard directive.
type Payload interface {
	payload()
}

// Text is a textual payload. Mode defaults to markdown via NewText.
type Text struct {
	Body string
	Mode ParseMode
}

func (Text) payload() {}

// NewText builds a markdown text payload, matching the channel default.
func NewText(body string) Text {
	return Text{Body: body, Mode: ParseModeMarkdown}
}

// PlainText builds a text payload with no markup interpretation.
func PlainText(body string) Text {
	return Text{Body: body, Mode: ParseModeNone}
}

// Media is a single rich-media payload.
type Media struct {
	Kind    MediaKind
	Ref     string
	Caption string
}

func (Media) payload() {}

// NewMedia builds an uncaptioned media payload.
func NewMedia(kind MediaKind, ref string) Media {
	return Media{Kind: kind, Ref: ref}
}

// NewCaptionedMedia builds a captioned media payload. It fails when the kind
// does not support captions, so malformed configuration surfaces at tree
// construction instead of being dropped at send time.
func NewCaptionedMedia(kind MediaKind, ref, caption string) (Media, error) {
	if !captionable[kind] {
		return Media{}, fmt.Errorf("%w: %s", ErrCaptionNotSupported, kind)
	}
	return Media{Kind: kind, Ref: ref, Caption: caption}, nil
}

// MustCaptionedMedia is NewCaptionedMedia for static trees built at startup.
func MustCaptionedMedia(kind MediaKind, ref, caption string) Media {
	m, err := NewCaptionedMedia(kind, ref, caption)
	if err != nil {
		panic(err)
	}
	return m
}

// Sequence is an ordered list of payloads delivered as one logical reply.
type Sequence []Payload

func (Sequence) payload() {}
