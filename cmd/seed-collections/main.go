// Command seed-collections derives collection rows from the distinct
// collection locations already present on books. Known archives can be
// given friendly display names through a YAML override file.
package main

import (
	"context"
	"flag"
	"log"
	"net/url"
	"os"
	"strings"

	"book-archive-api/config"
	"book-archive-api/models"
	"book-archive-api/services"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type override struct {
	// Match is a substring of the location field.
	Match   string `yaml:"match"`
	Name    string `yaml:"name"`
	Address string `yaml:"address"`
}

type overrideFile struct {
	Overrides []override `yaml:"overrides"`
}

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	config.InitDB()

	var overridePath string
	flag.StringVar(&overridePath, "overrides", "", "YAML file mapping location substrings to display names (optional)")
	flag.Parse()

	var overrides []override
	if overridePath != "" {
		data, err := os.ReadFile(overridePath)
		if err != nil {
			log.Fatalf("failed to read overrides: %v", err)
		}
		var f overrideFile
		if err := yaml.Unmarshal(data, &f); err != nil {
			log.Fatalf("failed to parse overrides: %v", err)
		}
		overrides = f.Overrides
	}

	locations, err := services.NewBookRepository(nil).DistinctCollectionLocations(context.Background())
	if err != nil {
		log.Fatalf("failed to load collection locations: %v", err)
	}
	log.Printf("found %d distinct collection locations", len(locations))

	created := 0
	for _, location := range locations {
		name, address := displayName(location, overrides)

		var existing models.Collection
		err := config.DB.Where("name = ? OR location = ?", name, location).First(&existing).Error
		if err == nil {
			continue
		}

		collection := models.Collection{
			Name:     name,
			Location: &location,
		}
		if address != "" {
			collection.Address = &address
		}
		if err := config.DB.Create(&collection).Error; err != nil {
			log.Printf("failed to create collection for %q: %v", location, err)
			continue
		}
		created++
	}

	log.Printf("created %d collections", created)
}

// displayName picks a readable collection name: an override if one
// matches, the hostname for URLs, otherwise the (truncated) location
// text itself.
func displayName(location string, overrides []override) (string, string) {
	for _, o := range overrides {
		if o.Match != "" && strings.Contains(location, o.Match) {
			return o.Name, o.Address
		}
	}

	if strings.HasPrefix(location, "http://") || strings.HasPrefix(location, "https://") {
		if u, err := url.Parse(location); err == nil && u.Hostname() != "" {
			return strings.TrimPrefix(u.Hostname(), "www."), ""
		}
	}

	runes := []rune(location)
	if len(runes) > 50 {
		return string(runes[:50]) + "...", ""
	}
	return location, ""
}
