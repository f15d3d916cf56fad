package demo

import (
	"testing"

	"orthoroute/routing"
)

func TestEverySceneRoutes(t *testing.T) {
	router := routing.NewRouter()
	for _, scene := range Scenes() {
		t.Run(scene.Name, func(t *testing.T) {
			path, err := router.Route(scene.Request)
			if err != nil {
				t.Fatalf("Route: %v", err)
			}
			if len(path) < 2 {
				t.Fatalf("path has %d points, want at least 2", len(path))
			}
		})
	}
}

func TestSceneNamesAreUnique(t *testing.T) {
	seen := make(map[string]bool)
	for _, scene := range Scenes() {
		if seen[scene.Name] {
			t.Errorf("duplicate scene name %q", scene.Name)
		}
		seen[scene.Name] = true
	}
}
