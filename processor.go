package headparams

import (
	"github.com/rs/zerolog"
)

// Processor applies template params to the tags of one resolution pass.
// It holds no per-pass state and is safe for concurrent use.
type Processor struct {
	log    zerolog.Logger
	policy AuditPolicy
}

func NewProcessor(opts ...func(*Processor)) *Processor {
	p := &Processor{log: zerolog.Nop(), policy: AuditOff}
	for _, o := range opts {
		o(p)
	}
	return p
}

func WithLogger(l zerolog.Logger) func(*Processor) {
	return func(p *Processor) { p.log = l }
}

func WithAuditPolicy(policy AuditPolicy) func(*Processor) {
	return func(p *Processor) { p.policy = policy }
}

// Name identifies the processor as a Hook.
func (p *Processor) Name() string { return string(KindTemplateParams) }

// ResolveTags returns a new tag list with the first templateParams tag removed
// and its params applied to every title, titleTemplate and meta content.
// Without a templateParams tag the input is returned as is. The input slice
// and its tags are never modified.
func (p *Processor) ResolveTags(tags []Tag) []Tag {
	paramsIdx := -1
	var title string
	titleSeen := false
	for i, t := range tags {
		if !titleSeen && t.Kind == KindTitle {
			title, titleSeen = t.TextContent, true
		}
		if paramsIdx == -1 && t.Kind == KindTemplateParams {
			paramsIdx = i
		}
	}
	if paramsIdx == -1 {
		return tags
	}

	params := tags[paramsIdx].Params.Clone()
	if params.PageTitle() == "" {
		params[KeyPageTitle] = String(title)
	}

	out := make([]Tag, 0, len(tags)-1)
	rewritten := 0
	for i, t := range tags {
		if i == paramsIdx {
			continue
		}
		t = t.clone()
		switch t.Kind {
		case KindTitle, KindTitleTemplate:
			t.TextContent = p.process(t.Kind, t.TextContent, params)
			rewritten++
		case KindMeta:
			if c, ok := t.Props[PropContent]; ok {
				t.Props[PropContent] = p.process(t.Kind, c, params)
				rewritten++
			}
		}
		out = append(out, t)
	}

	p.log.Debug().
		Int("tags", len(out)).
		Int("rewritten", rewritten).
		Str("separator", params.Separator()).
		Msg("template params applied")
	return out
}

func (p *Processor) process(kind Kind, s string, params Params) string {
	if p.policy == AuditLog {
		for _, tok := range Unresolved(s, params) {
			p.log.Warn().
				Str("tag", string(kind)).
				Str("token", tok.Raw()).
				Int("offset", tok.Offset).
				Msg("unresolved template param")
		}
	}
	return Process(s, params)
}

var defaultProcessor = NewProcessor()

// Apply runs ResolveTags with a silent default Processor.
func Apply(tags []Tag) []Tag {
	return defaultProcessor.ResolveTags(tags)
}
