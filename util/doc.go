// Package util provides small shared helpers for reqkit packages.
package util
