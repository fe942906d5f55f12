// Package settings describes what the Android settings script declares for
// a Flutter app: the plugin loader build it includes, the plugin
// repositories, the pinned plugins and the included subprojects.
package settings

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// Repository is a plugin repository shorthand as understood by Gradle.
type Repository string

const (
	Google             Repository = "google"
	MavenCentral       Repository = "mavenCentral"
	GradlePluginPortal Repository = "gradlePluginPortal"
)

// Plugin is a pinned build plugin. Apply=false only puts it on the
// classpath for subprojects.
type Plugin struct {
	ID      string `yaml:"id"`
	Version string `yaml:"version"`
	Apply   bool   `yaml:"apply"`
}

// PluginManagement holds the plugin loader build and repositories.
type PluginManagement struct {
	IncludeBuild string       `yaml:"include_build"`
	Repositories []Repository `yaml:"repositories"`
}

// Manifest is the full settings declaration.
type Manifest struct {
	PluginManagement PluginManagement `yaml:"plugin_management"`
	Plugins          []Plugin         `yaml:"plugins"`
	Include          []string         `yaml:"include"`
}

// Default returns the settings of a Flutter Android app whose plugin loader
// lives at loaderPath.
func Default(loaderPath string) Manifest {
	return Manifest{
		PluginManagement: PluginManagement{
			IncludeBuild: loaderPath,
			Repositories: []Repository{Google, MavenCentral, GradlePluginPortal},
		},
		Plugins: []Plugin{
			{ID: "dev.flutter.flutter-plugin-loader", Version: "1.0.0", Apply: true},
			{ID: "com.android.application", Version: "8.11.1"},
			{ID: "com.google.gms.google-services", Version: "4.3.15"},
			{ID: "org.jetbrains.kotlin.android", Version: "2.2.20"},
		},
		Include: []string{":app"},
	}
}

// Plugin looks up a plugin by id.
func (m Manifest) Plugin(id string) (Plugin, bool) {
	for _, p := range m.Plugins {
		if p.ID == id {
			return p, true
		}
	}
	return Plugin{}, false
}

// Encode writes the manifest as YAML.
func (m Manifest) Encode(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(m); err != nil {
		return fmt.Errorf("failed to encode settings: %w", err)
	}
	return enc.Close()
}
