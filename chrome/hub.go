package chrome

import "strings"

// Card is one entry on the documentation hub.
type Card struct {
	Title       string
	Description string
	Icon        string
	Href        string
	ComingSoon  bool
}

// HubCards returns the hub cards with links under base.
func HubCards(base string) []Card {
	base = "/" + strings.Trim(base, "/")
	return []Card{
		{
			Title:       "Getting Started",
			Description: "Start your journey with comprehensive guides and tutorials to get you up and running quickly.",
			Icon:        "rocket",
			Href:        base + "/getting-started",
		},
		{
			Title:       "Learn the Basics",
			Description: "Master the fundamentals of cybersecurity, bug hunting, and ethical hacking with structured learning paths.",
			Icon:        "book",
			Href:        base + "/learn-the-basics",
		},
		{
			Title:       "Hackers to Follow",
			Description: "Connect with top security researchers, bug bounty hunters, and cybersecurity experts across platforms.",
			Icon:        "user-secret",
			Href:        base + "/hackers-to-follow",
		},
		{
			Title:       "Bug Hunter's Toolkit",
			Description: "Essential tools and resources for bug bounty hunters. Everything you need to find and report vulnerabilities.",
			Icon:        "swords",
			Href:        base + "/bug-hunting-toolkit",
		},
		{
			Title:       "Advanced Techniques",
			Description: "Coming soon: Deep dive into advanced penetration testing, exploit development, and security research methodologies.",
			Icon:        "book",
			Href:        "#",
			ComingSoon:  true,
		},
		{
			Title:       "Security Labs",
			Description: "Coming soon: Practice your skills with hands-on labs, CTF challenges, and vulnerable applications.",
			Icon:        "book",
			Href:        "#",
			ComingSoon:  true,
		},
	}
}
