// Package profile holds the content shown by folio and the section layout derived from it.
package profile

import (
	"bytes"
	"errors"
	"os"

	"gopkg.in/yaml.v3"
)

var (
	ErrProfileRead    = errors.New("failed to read profile")
	ErrProfileInvalid = errors.New("invalid profile")
)

type Profile struct {
	Name        string    `yaml:"name"`
	Title       string    `yaml:"title"`
	Tagline     string    `yaml:"tagline"`
	Description string    `yaml:"description"`
	Avatar      string    `yaml:"avatar"`
	Stats       []Stat    `yaml:"stats"`
	Skills      []Skill   `yaml:"skills"`
	Projects    []Project `yaml:"projects"`
	Contact     Contact   `yaml:"contact"`
}

type Stat struct {
	Label string `yaml:"label"`
	Value int    `yaml:"value"`
}

type Skill struct {
	Name string `yaml:"name"`
	// Level is a 0-100 proficiency.
	Level int `yaml:"level"`
}

type Project struct {
	Name        string   `yaml:"name"`
	Description string   `yaml:"description"`
	Tags        []string `yaml:"tags"`
	URL         string   `yaml:"url"`
	Order       int      `yaml:"order"`
}

type Contact struct {
	Email    string `yaml:"email"`
	Location string `yaml:"location"`
	Links    []Link `yaml:"links"`
}

type Link struct {
	Name string `yaml:"name"`
	URL  string `yaml:"url"`
}

// Load reads a profile document from path. An empty path returns the built-in profile.
func Load(path string) (Profile, error) {
	if path == "" {
		return Default(), nil
	}

	body, errRead := os.ReadFile(path)
	if errRead != nil {
		return Profile{}, errors.Join(errRead, ErrProfileRead)
	}

	return Parse(body)
}

func Parse(body []byte) (Profile, error) {
	decoder := yaml.NewDecoder(bytes.NewReader(body))
	decoder.KnownFields(true)

	var prof Profile
	if err := decoder.Decode(&prof); err != nil {
		return Profile{}, errors.Join(err, ErrProfileRead)
	}

	if err := prof.Validate(); err != nil {
		return Profile{}, err
	}

	return prof, nil
}

func (p Profile) Validate() error {
	if p.Name == "" {
		return errors.Join(ErrProfileInvalid, errors.New("name is required"))
	}

	for _, skill := range p.Skills {
		if skill.Level < 0 || skill.Level > 100 {
			return errors.Join(ErrProfileInvalid, errors.New("skill level must be within 0-100: "+skill.Name))
		}
	}

	return nil
}

// Default is the profile shown when no document is configured.
func Default() Profile {
	return Profile{
		Name:    "Alex Nguyen",
		Title:   "Full-Stack Developer",
		Tagline: "Building fast, friendly software for the web and the terminal.",
		Description: "I design and build web applications end to end, from database schema to " +
			"the last pixel of the interface. Most days that means Go services, React front ends " +
			"and a lot of time spent making things feel smooth.",
		Avatar: "  .---.\n /     \\\n | o o |\n |  ^  |\n \\ '-' /\n  '---'",
		Stats: []Stat{
			{Label: "Years Experience", Value: 5},
			{Label: "Projects Shipped", Value: 48},
			{Label: "Happy Clients", Value: 1250},
		},
		Skills: []Skill{
			{Name: "Go", Level: 90},
			{Name: "JavaScript", Level: 85},
			{Name: "React", Level: 80},
			{Name: "Node.js", Level: 75},
			{Name: "SQL", Level: 70},
			{Name: "Docker", Level: 65},
		},
		Projects: []Project{
			{
				Name:        "Storefront",
				Description: "E-commerce platform built with React and Node.js with integrated online payments.",
				Tags:        []string{"React", "Node.js", "Stripe"},
				URL:         "https://github.com/example/storefront",
				Order:       1,
			},
			{
				Name:        "FitTrack",
				Description: "Fitness tracking app built with React Native featuring progress tracking and workout planning.",
				Tags:        []string{"React Native", "Firebase"},
				URL:         "https://github.com/example/fittrack",
				Order:       2,
			},
			{
				Name:        "Pulse",
				Description: "Data visualisation dashboard built with D3.js and React showing real-time data.",
				Tags:        []string{"D3.js", "React", "WebSocket"},
				URL:         "https://github.com/example/pulse",
				Order:       3,
			},
		},
		Contact: Contact{
			Email:    "alex@example.com",
			Location: "Ho Chi Minh City",
			Links: []Link{
				{Name: "GitHub", URL: "https://github.com/example"},
				{Name: "LinkedIn", URL: "https://linkedin.com/in/example"},
			},
		},
	}
}
