package models

type BlogPost struct {
	ID       int    `json:"id"`
	Title    string `json:"title"`
	Excerpt  string `json:"excerpt"`
	Author   string `json:"author"`
	Date     string `json:"date"`
	Category string `json:"category"`
	ImageURL string `json:"imageUrl,omitempty"`
}

type Resource struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Type        string `json:"type"`
	Link        string `json:"link"`
}

type ResourceCategory struct {
	Category string     `json:"category"`
	Items    []Resource `json:"items"`
}

type FAQ struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

type ChatOption struct {
	Value   string `json:"value"`
	Label   string `json:"label"`
	Trigger string `json:"trigger"`
}

type ChatLink struct {
	Label string `json:"label"`
	Href  string `json:"href"`
}

// ChatStep is one node of the scripted assistant. A step either shows a
// message (optionally with a list and a link), offers options, or waits for
// free-text input when User is set.
type ChatStep struct {
	ID      string       `json:"id"`
	Message string       `json:"message,omitempty"`
	Items   []string     `json:"items,omitempty"`
	Note    string       `json:"note,omitempty"`
	Link    *ChatLink    `json:"link,omitempty"`
	Options []ChatOption `json:"options,omitempty"`
	User    bool         `json:"user,omitempty"`
	Trigger string       `json:"trigger,omitempty"`
	End     bool         `json:"end,omitempty"`
}

// ChatStartStep is the id of the first step of every conversation.
const ChatStartStep = "1"
