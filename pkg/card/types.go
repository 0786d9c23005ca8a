package card

import "github.com/matzehuels/deck/pkg/geom"

// Type is the kind of view hosted by a card. It selects the default and
// minimum size.
type Type string

// Card types.
const (
	TypeChat        Type = "chat"
	TypeTerminal    Type = "terminal"
	TypeSettings    Type = "settings"
	TypeProfile     Type = "profile"
	TypeSubagent    Type = "subagent"
	TypeProject     Type = "project"
	TypeImageStudio Type = "image-studio"
	TypeVideoStudio Type = "video-studio"
	TypeAudioStudio Type = "audio-studio"
	TypeNotes       Type = "notes"
	TypeBrowser     Type = "browser"
	TypeFiles       Type = "files"
)

// Types lists every known card type in display order.
var Types = []Type{
	TypeChat, TypeTerminal, TypeSettings, TypeProfile, TypeSubagent, TypeProject,
	TypeImageStudio, TypeVideoStudio, TypeAudioStudio, TypeNotes, TypeBrowser, TypeFiles,
}

// Known reports whether t is one of the defined card types.
func (t Type) Known() bool {
	_, ok := builtinSizes[t]
	return ok
}

// Sizing holds the default and minimum size of a card type.
type Sizing struct {
	Default geom.Size
	Min     geom.Size
}

// FallbackSizing applies to types missing from a size table.
var FallbackSizing = Sizing{Default: geom.Size{W: 480, H: 480}, Min: geom.Size{W: 280, H: 200}}

var builtinSizes = map[Type]Sizing{
	TypeChat:        {Default: geom.Size{W: 480, H: 640}, Min: geom.Size{W: 320, H: 400}},
	TypeTerminal:    {Default: geom.Size{W: 640, H: 420}, Min: geom.Size{W: 360, H: 240}},
	TypeSettings:    {Default: geom.Size{W: 520, H: 560}, Min: geom.Size{W: 400, H: 360}},
	TypeProfile:     {Default: geom.Size{W: 420, H: 520}, Min: geom.Size{W: 320, H: 360}},
	TypeSubagent:    {Default: geom.Size{W: 440, H: 560}, Min: geom.Size{W: 320, H: 360}},
	TypeProject:     {Default: geom.Size{W: 560, H: 600}, Min: geom.Size{W: 400, H: 400}},
	TypeImageStudio: {Default: geom.Size{W: 720, H: 640}, Min: geom.Size{W: 480, H: 420}},
	TypeVideoStudio: {Default: geom.Size{W: 720, H: 640}, Min: geom.Size{W: 480, H: 420}},
	TypeAudioStudio: {Default: geom.Size{W: 560, H: 420}, Min: geom.Size{W: 400, H: 320}},
	TypeNotes:       {Default: geom.Size{W: 420, H: 480}, Min: geom.Size{W: 280, H: 240}},
	TypeBrowser:     {Default: geom.Size{W: 800, H: 600}, Min: geom.Size{W: 480, H: 360}},
	TypeFiles:       {Default: geom.Size{W: 480, H: 560}, Min: geom.Size{W: 320, H: 320}},
}

// SizeTable maps card types to their sizing. Lookups never fail: a missing
// type falls back to [FallbackSizing].
type SizeTable map[Type]Sizing

// DefaultSizes returns a fresh copy of the built-in size table.
func DefaultSizes() SizeTable {
	t := make(SizeTable, len(builtinSizes))
	for k, v := range builtinSizes {
		t[k] = v
	}
	return t
}

// Lookup returns the sizing for typ.
func (t SizeTable) Lookup(typ Type) Sizing {
	if s, ok := t[typ]; ok {
		return s
	}
	if s, ok := builtinSizes[typ]; ok {
		return s
	}
	return FallbackSizing
}

// Min returns the minimum size for typ.
func (t SizeTable) Min(typ Type) geom.Size { return t.Lookup(typ).Min }

// Default returns the default size for typ.
func (t SizeTable) Default(typ Type) geom.Size { return t.Lookup(typ).Default }

// Override replaces the sizing for typ. The minimum is capped by the default
// so a default-sized card is never below its own minimum.
func (t SizeTable) Override(typ Type, s Sizing) {
	if s.Min.W > s.Default.W {
		s.Min.W = s.Default.W
	}
	if s.Min.H > s.Default.H {
		s.Min.H = s.Default.H
	}
	t[typ] = s
}
