package domain

// Place is an origin or location reference attached to a character.
type Place struct {
	Name string `json:"name" yaml:"name"`
	URL  string `json:"url" yaml:"url"`
}

type Character struct {
	ID       int      `json:"id" yaml:"id"`
	Name     string   `json:"name" yaml:"name"`
	Status   string   `json:"status" yaml:"status"`   // Alive, Dead, unknown
	Species  string   `json:"species" yaml:"species"` // Human, Alien, ...
	Type     string   `json:"type" yaml:"type"`       // Subtype, often empty
	Gender   string   `json:"gender" yaml:"gender"`   // Female, Male, Genderless, unknown
	Origin   Place    `json:"origin" yaml:"origin"`
	Location Place    `json:"location" yaml:"location"`
	Image    string   `json:"image" yaml:"image"`
	Episode  []string `json:"episode" yaml:"episode"`
	URL      string   `json:"url" yaml:"url"`
	Created  string   `json:"created" yaml:"created"`
}

type PageInfo struct {
	Count int     `json:"count"` // Total characters across all pages
	Pages int     `json:"pages"` // Total number of pages
	Next  *string `json:"next"`  // URL of the next page, nil on the last one
	Prev  *string `json:"prev"`  // URL of the previous page, nil on the first one
}

type CharacterPage struct {
	Info    PageInfo    `json:"info"`
	Results []Character `json:"results"`
}

// HasNext reports whether the remote source announced another page.
func (p *CharacterPage) HasNext() bool {
	return p.Info.Next != nil && *p.Info.Next != ""
}
