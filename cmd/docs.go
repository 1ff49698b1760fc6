package cmd

import (
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"
)

// https://pmarsceill.github.io/just-the-docs/docs/navigation-structure/
const rootDoc = `---
layout: default
title: %s
nav_order: %d
has_children: true
permalink: /
---
`

// child command without children
const childDoc = `---
layout: default
title: %s
parent: %s
nav_order: %d
---
`

// child with children
const childParentDoc = `---
layout: default
title: %s
parent: %s
nav_order: %d
has_children: true
---
`

// grandchildren
const grandchildDoc = `---
layout: default
title: %s
parent: %s
grand_parent: %s
nav_order: %d
---
`

// docType codes whether the command is a grandchild, child, etc
type docType int

const (
	root docType = iota
	child
	childParent
	grandchild
)

// meta is for describing the position/info for a command doc page
type meta struct {
	docType     docType
	title       string
	navOrder    int
	parent      string
	grandParent string
}

// docsCmd is for writing the Markdown documentation of every command
var docsCmd = &cobra.Command{
	Use:    "docs [dir]",
	Short:  "Write Markdown documentation for every command",
	RunE:   docsExec,
	Args:   cobra.MaximumNArgs(1),
	Hidden: true,
}

// docsExec writes the docs into the directory argument, ./docs by default
func docsExec(cmd *cobra.Command, args []string) error {
	dir := "docs"
	if len(args) > 0 {
		dir = args[0]
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create docs directory: %w", err)
	}

	metas := docMetas(RootCmd)
	prepender := func(filename string) string {
		return filePrepender(metas, filename)
	}
	return doc.GenMarkdownTreeCustom(RootCmd, dir, prepender, linkHandler)
}

// docMetas maps each command's doc file name (without ".md") to its place in the nav
func docMetas(rootCmd *cobra.Command) map[string]meta {
	metas := map[string]meta{
		docName(rootCmd): {docType: root, title: rootCmd.Name()},
	}

	for i, c := range visible(rootCmd) {
		m := meta{docType: child, title: c.Name(), navOrder: i, parent: rootCmd.Name()}
		if len(visible(c)) > 0 {
			m.docType = childParent
		}
		metas[docName(c)] = m

		for j, gc := range visible(c) {
			metas[docName(gc)] = meta{
				docType:     grandchild,
				title:       gc.Name(),
				navOrder:    j,
				parent:      c.Name(),
				grandParent: rootCmd.Name(),
			}
		}
	}
	return metas
}

// visible are the subcommands that get a doc page
func visible(c *cobra.Command) (cmds []*cobra.Command) {
	for _, sub := range c.Commands() {
		if sub.IsAvailableCommand() && !sub.IsAdditionalHelpTopicCommand() {
			cmds = append(cmds, sub)
		}
	}
	return
}

// docName is the base name cobra gives a command's doc file, "gfa_find_segment"
func docName(c *cobra.Command) string {
	return strings.ReplaceAll(c.CommandPath(), " ", "_")
}

// filePrepender adds YAML headings that are required by the just-the-docs theme
// https://github.com/spf13/cobra/blob/master/doc/md_docs.md
func filePrepender(metas map[string]meta, filename string) string {
	name := filepath.Base(filename)
	base := strings.TrimSuffix(name, path.Ext(name))
	m, ok := metas[base]
	if !ok {
		return ""
	}

	switch m.docType {
	case root:
		return fmt.Sprintf(rootDoc, m.title, m.navOrder)
	case child:
		return fmt.Sprintf(childDoc, m.title, m.parent, m.navOrder)
	case childParent:
		return fmt.Sprintf(childParentDoc, m.title, m.parent, m.navOrder)
	case grandchild:
		return fmt.Sprintf(grandchildDoc, m.title, m.parent, m.grandParent, m.navOrder)
	}

	return ""
}

// linkHandler returns the URL to a documentation page
func linkHandler(filename string) string {
	name := filepath.Base(filename)
	base := strings.TrimSuffix(name, path.Ext(name))

	if base == RootCmd.Name() {
		return "/"
	}
	return "/" + strings.ReplaceAll(strings.TrimPrefix(base, RootCmd.Name()+"_"), "_", "/")
}

// set flags
func init() {
	RootCmd.AddCommand(docsCmd)
}
