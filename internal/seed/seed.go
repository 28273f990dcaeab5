// Package seed loads the restaurant catalog at startup from an ordered
// chain of data sources: a curated JSON file when one is configured, then
// the built-in default dataset. The first source that loads successfully
// wins; failures are logged and fall through.
package seed

import (
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/mandhitown/backend/internal/models"
)

// defaultImage is assigned to any restaurant seeded without an image
// reference.
const defaultImage = "https://images.unsplash.com/photo-1563379091339-03246963d51a?w=400"

// Source is one provider in the seed chain.
type Source interface {
	Name() string
	Load() ([]models.Restaurant, error)
}

// Restaurants evaluates the sources in order and returns the first
// successfully loaded dataset, with missing image references filled in.
// The default source never fails, so the chain always yields a catalog.
func Restaurants(sources ...Source) []models.Restaurant {
	for _, src := range sources {
		restaurants, err := src.Load()
		if err != nil {
			log.Printf("[seed] %s source failed, trying next: %v", src.Name(), err)
			continue
		}
		log.Printf("[seed] loaded %d restaurants from %s source", len(restaurants), src.Name())
		return applyDefaultImages(restaurants)
	}
	return nil
}

// Chain builds the standard source order: curated file first when a path is
// configured, built-in defaults last.
func Chain(curatedPath string) []Source {
	var sources []Source
	if curatedPath != "" {
		sources = append(sources, FileSource{Path: curatedPath})
	}
	return append(sources, DefaultSource{})
}

// FileSource loads a curated catalog from a JSON file.
type FileSource struct {
	Path string
}

func (s FileSource) Name() string { return "curated file" }

func (s FileSource) Load() ([]models.Restaurant, error) {
	data, err := os.ReadFile(s.Path)
	if err != nil {
		return nil, err
	}
	var restaurants []models.Restaurant
	if err := json.Unmarshal(data, &restaurants); err != nil {
		return nil, fmt.Errorf("parse %s: %w", s.Path, err)
	}
	if len(restaurants) == 0 {
		return nil, fmt.Errorf("%s contains no restaurants", s.Path)
	}
	return restaurants, nil
}

// DefaultSource returns the built-in demo dataset.
type DefaultSource struct{}

func (s DefaultSource) Name() string { return "default" }

func (s DefaultSource) Load() ([]models.Restaurant, error) {
	return []models.Restaurant{
		{
			ID:          1,
			Name:        "Hyderabadi Biryani House",
			Location:    "Downtown, City Center",
			Type:        "Hyderabadi Cuisine",
			Rating:      4.8,
			Image:       "https://images.unsplash.com/photo-1563379091339-03246963d51a?w=400",
			Description: "Authentic Hyderabadi biryani with traditional spices and tender meat.",
			Specialties: []string{"Chicken Biryani", "Mutton Biryani", "Vegetable Biryani"},
			Phone:       "+1-234-567-8901",
			Address:     "123 Main Street, Downtown",
		},
		{
			ID:          2,
			Name:        "Royal Mandhi Palace",
			Location:    "Heritage District",
			Type:        "Arabian Cuisine",
			Rating:      4.6,
			Image:       "https://images.unsplash.com/photo-1574484284002-952d92456975?w=400",
			Description: "Traditional Arabian mandhi with perfectly cooked rice and succulent meat.",
			Specialties: []string{"Lamb Mandhi", "Chicken Mandhi", "Fish Mandhi"},
			Phone:       "+1-234-567-8902",
			Address:     "456 Heritage Ave, Heritage District",
		},
		{
			ID:          3,
			Name:        "Spice Garden Restaurant",
			Location:    "Food Street",
			Type:        "Multi-Cuisine",
			Rating:      4.5,
			Image:       "https://images.unsplash.com/photo-1565299624946-b28f40a0ca4b?w=400",
			Description: "A fusion of flavors offering the best mandhi and biryani varieties.",
			Specialties: []string{"Mixed Grill Mandhi", "Seafood Biryani", "Vegetarian Platter"},
			Phone:       "+1-234-567-8903",
			Address:     "789 Food Street, Culinary Quarter",
		},
		{
			ID:          4,
			Name:        "Traditional Flavors",
			Location:    "Old Town",
			Type:        "Traditional Cuisine",
			Rating:      4.7,
			Image:       "https://images.unsplash.com/photo-1567620905732-2d1ec7ab7445?w=400",
			Description: "Family-owned restaurant serving authentic traditional mandhi for over 30 years.",
			Specialties: []string{"Traditional Goat Mandhi", "Chicken Kabsa", "Homemade Bread"},
			Phone:       "+1-234-567-8904",
			Address:     "321 Old Town Road, Historic Quarter",
		},
	}, nil
}

func applyDefaultImages(restaurants []models.Restaurant) []models.Restaurant {
	for i := range restaurants {
		if restaurants[i].Image == "" {
			restaurants[i].Image = defaultImage
		}
	}
	return restaurants
}
