// Package descriptor assembles the static package descriptor that is handed to
// the packaging toolchain. Field names follow the setuptools keywords.
package descriptor

// NBExtensionTarget is where the notebook server's extension loader looks for
// appmode's static assets. The path is part of that loader's contract.
const NBExtensionTarget = "share/jupyter/nbextensions/appmode"

// DataFiles maps one installation directory to the assets copied into it.
type DataFiles struct {
	Target string   `json:"target" yaml:"target" toml:"target"`
	Files  []string `json:"files" yaml:"files" toml:"files"`
}

// Descriptor is the package metadata for one build invocation.
// Values are built once per invocation and not mutated afterwards.
type Descriptor struct {
	Name               string      `json:"name" yaml:"name" toml:"name"`
	Version            string      `json:"version" yaml:"version" toml:"version"`
	License            string      `json:"license" yaml:"license" toml:"license"`
	Author             string      `json:"author" yaml:"author" toml:"author"`
	AuthorEmail        string      `json:"author_email" yaml:"author_email" toml:"author_email"`
	URL                string      `json:"url" yaml:"url" toml:"url"`
	Description        string      `json:"description" yaml:"description" toml:"description"`
	Packages           []string    `json:"packages" yaml:"packages" toml:"packages"`
	IncludePackageData bool        `json:"include_package_data" yaml:"include_package_data" toml:"include_package_data"`
	InstallRequires    []string    `json:"install_requires" yaml:"install_requires" toml:"install_requires"`
	DataFiles          []DataFiles `json:"data_files" yaml:"data_files" toml:"data_files"`
}

// Appmode returns the appmode descriptor for the given version.
func Appmode(version string) *Descriptor {
	return &Descriptor{
		Name:               "appmode",
		Version:            version,
		License:            "MIT",
		Author:             "Ole Schuett",
		AuthorEmail:        "ole.schuett@cp2k.org",
		URL:                "http://github.com/oschuett/appmode",
		Description:        "A Jupyter extensions that turns notebooks into web applications.",
		Packages:           []string{"appmode"},
		IncludePackageData: true,
		InstallRequires:    []string{"notebook>=5"},
		DataFiles: []DataFiles{{
			Target: NBExtensionTarget,
			Files: []string{
				"appmode/static/main.js",
				"appmode/static/gears.svg",
			},
		}},
	}
}

// Assets returns every source path listed in the data-file manifest, in order.
func (d *Descriptor) Assets() []string {
	var out []string
	for _, df := range d.DataFiles {
		out = append(out, df.Files...)
	}
	return out
}
