// Package parser reads and writes version fields in the files an extension
// project keeps in step with its Python package: package.json, pyproject.toml,
// YAML metadata, plain version files and source files matched by regex.
package parser
