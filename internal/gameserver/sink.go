package gameserver

import (
	"fmt"
	"io"
	"strings"
	"sync"
)

// MessageKind identifies what the client is shown.
type MessageKind uint8

const (
	MsgSystem MessageKind = iota
	MsgWhisper
	MsgEmote
	MsgSound
	MsgGossip
	MsgClose
	MsgStable
	MsgVendor
	MsgPetBar
	MsgSpellLearned
	MsgSpellRemoved
)

var kindNames = [...]string{
	MsgSystem:       "system",
	MsgWhisper:      "whisper",
	MsgEmote:        "emote",
	MsgSound:        "sound",
	MsgGossip:       "gossip",
	MsgClose:        "close",
	MsgStable:       "stable",
	MsgVendor:       "vendor",
	MsgPetBar:       "petbar",
	MsgSpellLearned: "learned",
	MsgSpellRemoved: "removed",
}

func (k MessageKind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("kind(%d)", k)
}

// Message is one server-to-client notification.
// To is the receiving player, empty for area broadcasts (emotes).
type Message struct {
	Kind  MessageKind
	To    string
	From  string
	Text  string
	Lines []string
}

func (m Message) String() string {
	var b strings.Builder
	b.WriteByte('[')
	b.WriteString(m.Kind.String())
	b.WriteByte(']')
	if m.To != "" {
		b.WriteString(" to=")
		b.WriteString(m.To)
	}
	if m.From != "" {
		b.WriteString(" from=")
		b.WriteString(m.From)
	}
	if m.Text != "" {
		b.WriteByte(' ')
		b.WriteString(m.Text)
	}
	for _, l := range m.Lines {
		b.WriteString("\n    ")
		b.WriteString(l)
	}
	return b.String()
}

// Sink delivers messages to clients.
type Sink interface {
	Send(msg Message)
}

// WriterSink prints messages one per line. Safe for concurrent use.
type WriterSink struct {
	mu sync.Mutex
	w  io.Writer
}

// NewWriterSink creates a sink writing to w.
func NewWriterSink(w io.Writer) *WriterSink {
	return &WriterSink{w: w}
}

func (s *WriterSink) Send(msg Message) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fmt.Fprintln(s.w, msg.String())
}
