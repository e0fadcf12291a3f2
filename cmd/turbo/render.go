package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/pthm/turbo/action"
	"github.com/pthm/turbo/lib/tag"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// streamFlags describes one action on the command line.
type streamFlags struct {
	target      string
	targets     string
	content     string
	contentFile string
	attrs       map[string]string
}

func (f *streamFlags) register(fs *pflag.FlagSet) {
	fs.StringVar(&f.target, "target", "", "id of the element to act on")
	fs.StringVar(&f.targets, "targets", "", "CSS selector of the elements to act on")
	fs.StringVarP(&f.content, "content", "c", "", "template content (inserted verbatim)")
	fs.StringVar(&f.contentFile, "content-file", "", "read template content from a file (- for stdin)")
	fs.StringToStringVarP(&f.attrs, "attr", "a", nil, "extra attribute as key=value (repeatable)")
}

// build assembles the action named name from the flags.
func (f *streamFlags) build(name string, stdin io.Reader, log logrus.FieldLogger) (action.Custom, error) {
	if f.target != "" && f.targets != "" {
		return action.Custom{}, errors.New("--target and --targets are mutually exclusive")
	}
	if f.content != "" && f.contentFile != "" {
		return action.Custom{}, errors.New("--content and --content-file are mutually exclusive")
	}

	content := f.content
	if f.contentFile != "" {
		data, err := readContent(f.contentFile, stdin)
		if err != nil {
			return action.Custom{}, err
		}
		content = string(data)
	}

	c := action.Custom{
		Name:       name,
		Attributes: tag.AttributesFrom(f.attrs),
		Content:    content,
	}
	switch {
	case f.target != "":
		t := action.ID(f.target)
		c.Target = &t
	case f.targets != "":
		t := action.All(f.targets)
		c.Target = &t
	}

	if !action.Known(name) {
		log.WithField("action", name).Warn("action is not part of the Turbo or turbo_power vocabulary")
	}
	return c, nil
}

func readContent(path string, stdin io.Reader) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(stdin)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read content: %w", err)
	}
	return data, nil
}

func newRenderCmd(a *app) *cobra.Command {
	var f streamFlags

	cmd := &cobra.Command{
		Use:   "render ACTION",
		Short: "Print a <turbo-stream> element",
		Long: `Render prints the <turbo-stream> element for ACTION.

Attribute values are escaped; content is inserted verbatim.

Examples:
  turbo render remove --target message_1
  turbo render append --target messages --content "<li>Hi</li>"
  turbo render add_css_class --targets ".card" --attr classes="shadow"
  echo "<p>Body</p>" | turbo render update --target body --content-file -`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := f.build(args[0], cmd.InOrStdin(), a.log)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), action.Render(c))
			return err
		},
	}
	f.register(cmd.Flags())
	return cmd
}
