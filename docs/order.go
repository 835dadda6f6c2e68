package docs

// orderedSlugs is the canonical reading order across the documentation
// sections. It matches the order of the sidebar.
var orderedSlugs = []string{
	// Getting Started
	"",
	// Bug Hunter's Toolkit
	"arsenal",
	"reconnaissance",
	"methodology",
	"extensions",
	"writeups",
	"youtube-channels",
	// Learn the Basics
	"cyber-security-types",
	"common-job-roles",
	"get-started-with-infosec",
	"best-bug-bounty-platform",
	"best-infosec-writeups-website",
	"hacking-books",
	"cli-commands",
	"learn-wsl",
	// Hackers to Follow
	"twitter",
	"medium",
	"youtube",
	"discord",
	"security-gitbooks",
}

// OrderedSlugs returns a copy of the canonical reading order.
func OrderedSlugs() []string {
	return append([]string(nil), orderedSlugs...)
}

// Tier identifies which source an order was taken from.
type Tier int

const (
	TierExplicit   Tier = iota // the hand-maintained list
	TierMeta                   // meta.json
	TierDiscovered             // every page, in enumeration order
)

func (t Tier) String() string {
	switch t {
	case TierExplicit:
		return "explicit"
	case TierMeta:
		return "meta"
	case TierDiscovered:
		return "discovered"
	}
	return "unknown"
}

// Order returns the reading order that contains current, trying the explicit
// list, then meta.json, then every discovered page.
func (n *Navigator) Order(current string) ([]string, Tier) {
	if o := n.resolvable(n.ordered); contains(o, current) {
		return o, TierExplicit
	}
	if o := n.resolvable(n.metaOrder()); contains(o, current) {
		return o, TierMeta
	}
	return n.discovered(), TierDiscovered
}

// Neighbors returns the pages before and after current in its reading order.
func (n *Navigator) Neighbors(current string) (prev, next *Link) {
	order, _ := n.Order(current)
	i := index(order, current)
	if i < 0 {
		return nil, nil
	}
	if i > 0 {
		prev = n.link(order[i-1])
	}
	if i < len(order)-1 {
		next = n.link(order[i+1])
	}
	// the getting-started index already is the introduction
	if current == GettingStarted && prev != nil && prev.Slug == "" {
		prev = nil
	}
	return prev, next
}

// Check returns the slugs of the explicit order that do not resolve to a page.
func (n *Navigator) Check() []string {
	var missing []string
	for _, s := range n.ordered {
		if !n.exists(s) {
			missing = append(missing, s)
		}
	}
	return missing
}

// resolvable filters keys down to those that resolve to a page, keeping order.
func (n *Navigator) resolvable(keys []string) []string {
	var r []string
	for _, k := range keys {
		if n.exists(k) {
			r = append(r, k)
		}
	}
	return r
}

func (n *Navigator) discovered() []string {
	params := n.src.Params()
	r := make([]string, len(params))
	for i, p := range params {
		r[i] = joinSlug(p)
	}
	return r
}

func index(arr []string, s string) int {
	for i := range arr {
		if arr[i] == s {
			return i
		}
	}
	return -1
}

func contains(arr []string, s string) bool {
	return index(arr, s) >= 0
}
