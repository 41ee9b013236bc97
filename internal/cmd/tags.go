package cmd

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/renato0307/mama/internal/domain"
)

// TagsCmd manages tags
type TagsCmd struct {
	Add    TagsAddCmd    `cmd:"add" help:"Add a new tag"`
	Attach TagsAttachCmd `cmd:"attach" help:"Attach a tag to a task"`
	Detach TagsDetachCmd `cmd:"detach" help:"Detach a tag from a task"`
	List   TagsListCmd   `cmd:"list" help:"List tags" default:"1"`
	Show   TagsShowCmd   `cmd:"show" help:"Show the tags of a task"`
}

// TagsAddCmd adds a tag
type TagsAddCmd struct {
	Color string `help:"Tag color as #RRGGBB" short:"c"`
	Name  string `arg:"" help:"Tag name"`
}

// Run executes the add command
func (t *TagsAddCmd) Run(container *Container) error {
	tag, err := container.TagService.Create(context.Background(), t.Name, t.Color)
	if err != nil {
		return err
	}
	fmt.Printf("Tag '%s' added (%s)\n", tag.Name, tag.Color)
	return nil
}

// TagsListCmd lists tags
type TagsListCmd struct {
	Format string `help:"Output format: table or json" enum:"table,json" default:"table"`
}

// Run executes the list command
func (t *TagsListCmd) Run(container *Container) error {
	tags, err := container.TagService.List(context.Background())
	if err != nil {
		return err
	}
	return printTags(tags, t.Format)
}

// TagsAttachCmd attaches a tag to a task
type TagsAttachCmd struct {
	Tag    string `arg:"" help:"Tag name"`
	TaskID string `arg:"" help:"Task ID"`
}

// Run executes the attach command
func (t *TagsAttachCmd) Run(container *Container) error {
	if err := container.TagService.AddToTask(context.Background(), t.TaskID, t.Tag); err != nil {
		return err
	}
	fmt.Printf("Tag '%s' attached to task '%s'\n", t.Tag, t.TaskID)
	return nil
}

// TagsDetachCmd detaches a tag from a task
type TagsDetachCmd struct {
	Tag    string `arg:"" help:"Tag name"`
	TaskID string `arg:"" help:"Task ID"`
}

// Run executes the detach command
func (t *TagsDetachCmd) Run(container *Container) error {
	if err := container.TagService.RemoveFromTask(context.Background(), t.TaskID, t.Tag); err != nil {
		return err
	}
	fmt.Printf("Tag '%s' detached from task '%s'\n", t.Tag, t.TaskID)
	return nil
}

// TagsShowCmd shows the tags of one task
type TagsShowCmd struct {
	Format string `help:"Output format: table or json" enum:"table,json" default:"table"`
	TaskID string `arg:"" help:"Task ID"`
}

// Run executes the show command
func (t *TagsShowCmd) Run(container *Container) error {
	tags, err := container.TagService.TaskTags(context.Background(), t.TaskID)
	if err != nil {
		return err
	}
	return printTags(tags, t.Format)
}

// tagJSON is the JSON shape of a tag
type tagJSON struct {
	Color string `json:"color"`
	ID    string `json:"id"`
	Name  string `json:"name"`
}

func printTags(tags []domain.Tag, format string) error {
	if format == "json" {
		out := make([]tagJSON, len(tags))
		for i, tag := range tags {
			out[i] = tagJSON{Color: tag.Color, ID: tag.ID, Name: tag.Name}
		}
		return printJSON(out)
	}

	if len(tags) == 0 {
		fmt.Println("No tags.")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tCOLOR")
	for _, tag := range tags {
		fmt.Fprintf(w, "%s\t%s\n", tag.Name, tag.Color)
	}
	return w.Flush()
}
