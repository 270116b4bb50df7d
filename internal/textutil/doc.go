// Package textutil provides small text formatting helpers shared by log
// messages and terminal tables, chiefly locale-aware count rendering.
package textutil
