package permissions

import (
	_ "embed"
	"encoding/json"
	"slices"
	"sportshub/shared/constant"
	"strings"
	"sync"

	"github.com/rs/zerolog/log"
)

//go:embed permissions.json
var permissionsData []byte

var knownRoles = []string{constant.RoleAdmin, constant.RoleCoach}

// Permission maps one chi route pattern and method to the roles allowed on it.
// Skip marks a public route.
type Permission struct {
	Permissions []string `json:"permissions"`
	Path        string   `json:"path"`
	Method      string   `json:"method"`
	Skip        bool     `json:"skip"`
}

type PermissionData struct {
	Endpoints []Permission `json:"endpoints"`
	Skip      bool         `json:"skip"`

	indexOnce sync.Once
	index     map[string]Permission
}

func routeKey(path, method string) string {
	return strings.ToUpper(method) + " " + strings.TrimSuffix(path, "/")
}

// FindPermissions returns the entry for a chi route pattern. A trailing slash is not significant.
func (r *PermissionData) FindPermissions(path, method string) Permission {
	r.indexOnce.Do(func() {
		r.index = make(map[string]Permission, len(r.Endpoints))

		for _, endpoint := range r.Endpoints {
			r.index[routeKey(endpoint.Path, endpoint.Method)] = endpoint
		}
	})

	return r.index[routeKey(path, method)]
}

// validate logs entries that can never match or that grant an unknown role.
func (r *PermissionData) validate() {
	for _, endpoint := range r.Endpoints {
		if !strings.HasPrefix(endpoint.Path, "/") || endpoint.Method == constant.Empty {
			log.Warn().Str("path", endpoint.Path).Str("method", endpoint.Method).Msg("Permission entry has no usable route")
		}

		for _, role := range endpoint.Permissions {
			if !slices.Contains(knownRoles, role) {
				log.Warn().Str("path", endpoint.Path).Str("role", role).Msg("Permission entry grants an unknown role")
			}
		}
	}
}

func Get() *PermissionData {
	var permissions PermissionData

	err := json.Unmarshal(permissionsData, &permissions)
	if err != nil {
		log.Err(err).Msg("Failed to decode embedded permissions")

		return nil
	}

	permissions.validate()

	log.Info().Int("endpoints", len(permissions.Endpoints)).Msg("Successfully loaded embedded permissions")

	return &permissions
}
