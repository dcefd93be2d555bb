package cli

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

var testMeals = []map[string]any{
	{
		"idMeal": "52771", "strMeal": "Spicy Arrabiata Penne", "strCategory": "Vegetarian", "strArea": "Italian",
		"strInstructions": "Bring a large pot of water to a boil.", "strMealThumb": "https://example.com/arrabiata.jpg",
		"strTags": "Pasta,Curry", "strYoutube": "https://www.youtube.com/watch?v=1IszT_guI08",
		"strIngredient1": "penne rigate", "strMeasure1": "1 pound",
		"strIngredient2": "olive oil", "strMeasure2": "1/4 cup",
		"strIngredient3": "", "strMeasure3": " ",
	},
	{
		"idMeal": "52772", "strMeal": "Teriyaki Chicken Casserole", "strCategory": "Chicken", "strArea": "Japanese",
		"strInstructions": "Preheat oven to 350° F.", "strMealThumb": "https://example.com/teriyaki.jpg",
		"strIngredient1": "soy sauce", "strMeasure1": "3/4 cup",
	},
	{
		"idMeal": "52773", "strMeal": "Honey Teriyaki Salmon", "strCategory": "Seafood", "strArea": "Japanese",
		"strInstructions": "Mix all the ingredients.", "strMealThumb": "https://example.com/salmon.jpg",
	},
}

type catalogServer struct {
	*httptest.Server
	lookups atomic.Int32
	failID  atomic.Value // string
}

func newCatalogServer(t *testing.T) *catalogServer {
	t.Helper()
	cs := &catalogServer{}
	cs.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		var meals []map[string]any

		switch r.URL.Path {
		case "/search.php":
			q := strings.ToLower(r.URL.Query().Get("s"))
			for _, m := range testMeals {
				if strings.Contains(strings.ToLower(m["strMeal"].(string)), q) {
					meals = append(meals, m)
				}
			}
		case "/lookup.php":
			cs.lookups.Add(1)
			id := r.URL.Query().Get("i")
			if failID, _ := cs.failID.Load().(string); id == failID {
				w.WriteHeader(http.StatusInternalServerError)
				return
			}
			for _, m := range testMeals {
				if m["idMeal"] == id {
					meals = append(meals, m)
				}
			}
		default:
			http.NotFound(w, r)
			return
		}
		// The catalog reports "no results" as null, never []
		json.NewEncoder(w).Encode(map[string]any{"meals": meals})
	}))
	t.Cleanup(cs.Close)
	return cs
}

func writeConfig(t *testing.T, catalogURL, driver string) string {
	t.Helper()
	dir := t.TempDir()
	cfg := fmt.Sprintf(`catalog:
  base_url: %s
  max_concurrent_lookups: 2
storage:
  driver: %s
  path: %s
ui:
  filter_mode: fuzzy
logging:
  file: %s
  level: debug
`, catalogURL, driver, filepath.Join(dir, "data"), filepath.Join(dir, "mealbook.log"))

	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(cfg), 0644))
	return path
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	out := &bytes.Buffer{}
	cmd := NewRootCommand("test")
	cmd.SetOut(out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestListCommand(t *testing.T) {
	srv := newCatalogServer(t)
	cfg := writeConfig(t, srv.URL, "memory")

	t.Run("table", func(t *testing.T) {
		out, err := execute(t, "--config", cfg, "list")
		require.NoError(t, err)
		assert.Contains(t, out, "Spicy Arrabiata Penne")
		assert.Contains(t, out, "52773")
	})

	t.Run("server-side query", func(t *testing.T) {
		out, err := execute(t, "--config", cfg, "list", "teriyaki", "-o", "json")
		require.NoError(t, err)

		var rows []map[string]any
		require.NoError(t, json.Unmarshal([]byte(out), &rows))
		require.Len(t, rows, 2)
		assert.Equal(t, "52772", rows[0]["id"])
		assert.Equal(t, false, rows[0]["favorite"])
	})

	t.Run("client-side filter", func(t *testing.T) {
		out, err := execute(t, "--config", cfg, "list", "--filter", "tcc", "-o", "yaml")
		require.NoError(t, err)

		var rows []map[string]any
		require.NoError(t, yaml.Unmarshal([]byte(out), &rows))
		require.Len(t, rows, 1)
		assert.Equal(t, "Teriyaki Chicken Casserole", rows[0]["name"])
	})

	t.Run("no results", func(t *testing.T) {
		out, err := execute(t, "--config", cfg, "list", "pizza")
		require.NoError(t, err)
		assert.Contains(t, out, "No recipes found.")
	})

	t.Run("bad format", func(t *testing.T) {
		_, err := execute(t, "--config", cfg, "list", "-o", "xml")
		assert.ErrorContains(t, err, "unsupported output format")
	})
}

func TestShowCommand(t *testing.T) {
	srv := newCatalogServer(t)
	cfg := writeConfig(t, srv.URL, "memory")

	t.Run("text", func(t *testing.T) {
		out, err := execute(t, "--config", cfg, "show", "52771")
		require.NoError(t, err)
		assert.Contains(t, out, "Spicy Arrabiata Penne")
		assert.Contains(t, out, "1 pound penne rigate")
		assert.Contains(t, out, "1/4 cup olive oil")
		assert.Contains(t, out, "youtube.com")
	})

	t.Run("json", func(t *testing.T) {
		out, err := execute(t, "--config", cfg, "show", "52771", "-o", "json")
		require.NoError(t, err)

		var got struct {
			ID          string   `json:"id"`
			Tags        []string `json:"tags"`
			Ingredients []struct {
				Ingredient string `json:"ingredient"`
				Measure    string `json:"measure"`
			} `json:"ingredients"`
		}
		require.NoError(t, json.Unmarshal([]byte(out), &got))
		assert.Equal(t, "52771", got.ID)
		assert.Equal(t, []string{"Pasta", "Curry"}, got.Tags)
		require.Len(t, got.Ingredients, 2, "blank ingredient slots are dropped")
		assert.Equal(t, "penne rigate", got.Ingredients[0].Ingredient)
	})

	t.Run("not found", func(t *testing.T) {
		_, err := execute(t, "--config", cfg, "show", "99999")
		assert.ErrorContains(t, err, "recipe not found")
	})
}

func TestFavoritesCommands(t *testing.T) {
	srv := newCatalogServer(t)
	cfg := writeConfig(t, srv.URL, "bolt")

	out, err := execute(t, "--config", cfg, "favorites")
	require.NoError(t, err)
	assert.Contains(t, out, "No favorite recipes yet.")

	// Each command is a separate process lifetime; bolt keeps the set
	out, err = execute(t, "--config", cfg, "favorites", "toggle", "52773")
	require.NoError(t, err)
	assert.Equal(t, "Added 52773 (1 favorites)\n", out)

	_, err = execute(t, "--config", cfg, "favorites", "toggle", "52771")
	require.NoError(t, err)

	out, err = execute(t, "--config", cfg, "favorites", "ids")
	require.NoError(t, err)
	assert.Equal(t, "52773\n52771\n", out)

	out, err = execute(t, "--config", cfg, "favorites", "-o", "json")
	require.NoError(t, err)
	var rows []map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &rows))
	require.Len(t, rows, 2)
	assert.Equal(t, "52773", rows[0]["id"])
	assert.Equal(t, "52771", rows[1]["id"])

	out, err = execute(t, "--config", cfg, "list", "-o", "json")
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal([]byte(out), &rows))
	assert.Equal(t, true, rows[0]["favorite"])
	assert.Equal(t, false, rows[1]["favorite"])

	out, err = execute(t, "--config", cfg, "favorites", "toggle", "52773")
	require.NoError(t, err)
	assert.Equal(t, "Removed 52773 (1 favorites)\n", out)

	out, err = execute(t, "--config", cfg, "favorites", "ids", "-o", "json")
	require.NoError(t, err)
	assert.JSONEq(t, `["52771"]`, out)
}

func TestFavoritesCommand_FailedLookupFailsAll(t *testing.T) {
	srv := newCatalogServer(t)
	cfg := writeConfig(t, srv.URL, "bolt")

	for _, id := range []string{"52771", "52772"} {
		_, err := execute(t, "--config", cfg, "favorites", "toggle", id)
		require.NoError(t, err)
	}
	srv.failID.Store("52772")

	out, err := execute(t, "--config", cfg, "favorites")
	assert.ErrorContains(t, err, "failed to load favorites")
	assert.NotContains(t, out, "Spicy Arrabiata Penne", "no partial list")
}

func TestFavoritesCommand_EmptyMakesNoRequests(t *testing.T) {
	srv := newCatalogServer(t)
	cfg := writeConfig(t, srv.URL, "sqlite")

	out, err := execute(t, "--config", cfg, "favorites", "-o", "json")
	require.NoError(t, err)
	assert.JSONEq(t, `[]`, out)
	assert.Zero(t, srv.lookups.Load())
}

func TestFavoritesClearCommand(t *testing.T) {
	for _, driver := range []string{"bolt", "sqlite"} {
		t.Run(driver, func(t *testing.T) {
			srv := newCatalogServer(t)
			cfg := writeConfig(t, srv.URL, driver)

			for _, id := range []string{"52771", "52772"} {
				_, err := execute(t, "--config", cfg, "favorites", "toggle", id)
				require.NoError(t, err)
			}

			out, err := execute(t, "--config", cfg, "favorites", "clear")
			require.NoError(t, err)
			assert.Equal(t, "Cleared 2 favorites\n", out)

			out, err = execute(t, "--config", cfg, "favorites", "ids", "-o", "json")
			require.NoError(t, err)
			assert.JSONEq(t, `[]`, out)
		})
	}
}

func TestToggleCommand_RejectsEmptyID(t *testing.T) {
	srv := newCatalogServer(t)
	cfg := writeConfig(t, srv.URL, "memory")

	_, err := execute(t, "--config", cfg, "favorites", "toggle", "")
	assert.Error(t, err)
}

func TestRootCommand(t *testing.T) {
	t.Run("version", func(t *testing.T) {
		out, err := execute(t, "--version")
		require.NoError(t, err)
		assert.Contains(t, out, "test")
	})

	t.Run("browser needs a terminal", func(t *testing.T) {
		_, err := execute(t)
		assert.ErrorIs(t, err, ErrNotInteractive)
	})

	t.Run("missing config file", func(t *testing.T) {
		_, err := execute(t, "--config", filepath.Join(t.TempDir(), "nope.yaml"), "favorites", "ids")
		assert.ErrorContains(t, err, "failed to load config")
	})
}
