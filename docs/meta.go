package docs

import (
	"encoding/json"
	"errors"
	"io/fs"
	"strings"

	"go.uber.org/zap"
)

// MetaFile is the content metadata file that may list page slugs in order.
const MetaFile = "meta.json"

type meta struct {
	Pages []any `json:"pages"`
}

// parseMeta returns the page slugs listed in a meta.json document, without
// separators ("---Title---") and rest markers ("...").
func parseMeta(b []byte) ([]string, error) {
	var m meta
	err := json.Unmarshal(b, &m)
	if err != nil {
		return nil, err
	}
	var r []string
	for _, p := range m.Pages {
		s, ok := p.(string)
		if !ok || strings.HasPrefix(s, "---") || strings.HasPrefix(s, "...") {
			continue
		}
		r = append(r, s)
	}
	return r, nil
}

// metaOrder reads the meta.json order. A missing or malformed file yields nil.
func (n *Navigator) metaOrder() []string {
	if n.meta == nil {
		return nil
	}
	b, err := n.meta.ReadFile(MetaFile)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			n.logger.Debug("Cannot read meta.json", zap.Error(err))
		}
		return nil
	}
	r, err := parseMeta(b)
	if err != nil {
		n.logger.Debug("Cannot parse meta.json", zap.Error(err))
		return nil
	}
	return r
}
