package handlers

import (
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"output-floor/internal/api/models"
	"output-floor/internal/config"

	"github.com/gin-gonic/gin"
)

// ProfileHandler handles profile preset requests
type ProfileHandler struct {
	profileDir string
}

// NewProfileHandler creates a new profile handler
func NewProfileHandler() *ProfileHandler {
	dir := profileDir()
	if absDir, err := filepath.Abs(dir); err == nil {
		dir = absDir
	}
	log.Printf("ProfileHandler: using profile directory: %s", dir)
	return &ProfileHandler{profileDir: dir}
}

// GetProfileDir returns the profile directory path (for debugging)
func (h *ProfileHandler) GetProfileDir() string {
	return h.profileDir
}

// ListProfiles handles GET /api/v1/profiles
func (h *ProfileHandler) ListProfiles(c *gin.Context) {
	profiles := []models.ProfileInfo{}

	entries, err := os.ReadDir(h.profileDir)
	if err != nil {
		log.Printf("ProfileHandler: failed to read profile directory %s: %v", h.profileDir, err)
		c.JSON(http.StatusOK, gin.H{"profiles": profiles})
		return
	}

	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".yaml") {
			continue
		}

		path := filepath.Join(h.profileDir, entry.Name())
		info, err := h.loadProfileInfo(path, entry.Name())
		if err != nil {
			log.Printf("ProfileHandler: failed to load profile file %s: %v", path, err)
			continue // Skip invalid files
		}
		profiles = append(profiles, *info)
	}

	c.JSON(http.StatusOK, gin.H{"profiles": profiles})
}

func (h *ProfileHandler) loadProfileInfo(path, filename string) (*models.ProfileInfo, error) {
	profile, err := config.LoadProfileFile(path)
	if err != nil {
		return nil, err
	}

	// Keep the filename without extension as the ID for consistency
	// (e.g. "universal_bank.yaml" -> "universal_bank").
	id := strings.TrimSuffix(filename, ".yaml")

	name := profile.Name
	if name == "" {
		name = id
	}

	return &models.ProfileInfo{
		ID:   id,
		Name: name,
		File: path,
		Figures: models.ProfileFigures{
			StandardizedSum:  profile.ToModelProfile().StandardizedSum(),
			InternalModelRWA: profile.InternalModelRWA,
		},
	}, nil
}
