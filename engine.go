package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/flosch/pongo2/v6"
)

// reservedPageTemplateName is the logical name the page renderer registers
// the entry body under. A user template file with this stem would silently
// shadow the body, so loading such a file is a hard configuration error.
const reservedPageTemplateName = "page"

// templateEngine wraps a pongo2 template set. Every render operation
// creates its own engine so template registrations never leak between
// renders.
type templateEngine struct {
	set       *pongo2.TemplateSet
	templates map[string]*pongo2.Template
}

// newTemplateEngine returns an engine whose relative template references
// ({% include %}, {% extends %}) resolve against baseDir. It fails when
// baseDir does not exist or is not a directory; a misconfigured template
// directory is a user error, not a reason to panic.
func newTemplateEngine(baseDir string) (*templateEngine, error) {
	loader, err := pongo2.NewLocalFileSystemLoader(baseDir)
	if err != nil {
		return nil, err
	}
	return &templateEngine{
		set:       pongo2.NewSet("caps11", loader),
		templates: make(map[string]*pongo2.Template),
	}, nil
}

// newRawTemplateEngine returns an engine for in-memory templates only. Its
// loader has no base dir to stat, so construction cannot fail.
func newRawTemplateEngine() *templateEngine {
	return &templateEngine{
		set:       pongo2.NewSet("caps11", pongo2.MustNewLocalFileSystemLoader("")),
		templates: make(map[string]*pongo2.Template),
	}
}

// addTemplateFile loads a single template file under the given logical name.
func (te *templateEngine) addTemplateFile(name, path string) error {
	tpl, err := te.set.FromFile(path)
	if err != nil {
		return err
	}
	te.templates[name] = tpl
	return nil
}

// addRawTemplate registers an in-memory template string under the given
// logical name.
func (te *templateEngine) addRawTemplate(name, source string) error {
	tpl, err := te.set.FromString(source)
	if err != nil {
		return err
	}
	te.templates[name] = tpl
	return nil
}

// addTemplateDir loads every regular file in dir as a template named by its
// file stem. The whole set is rejected before anything loads if any stem
// collides with the reserved page template name.
func (te *templateEngine) addTemplateDir(dir string) error {
	dirEntries, err := os.ReadDir(dir)
	if err != nil {
		return err
	}

	names := make(map[string]string, len(dirEntries))
	for _, de := range dirEntries {
		if de.IsDir() {
			continue
		}
		name := stem(de.Name())
		if name == reservedPageTemplateName {
			return fmt.Errorf("page template directory must NOT contain a %s template file", reservedPageTemplateName)
		}
		names[name] = filepath.Join(dir, de.Name())
	}

	for name, path := range names {
		if err := te.addTemplateFile(name, path); err != nil {
			return err
		}
	}
	return nil
}

func (te *templateEngine) render(name string, ctx pongo2.Context) (string, error) {
	tpl, ok := te.templates[name]
	if !ok {
		return "", fmt.Errorf("no template named %q is registered", name)
	}
	return tpl.Execute(ctx)
}

func (te *templateEngine) renderTo(name string, ctx pongo2.Context, w io.Writer) error {
	tpl, ok := te.templates[name]
	if !ok {
		return fmt.Errorf("no template named %q is registered", name)
	}
	return tpl.ExecuteWriter(ctx, w)
}

// causeChain walks err's full cause chain into an ordered message list,
// following both Go error wrapping and pongo2's OrigError nesting.
func causeChain(err error) []string {
	var messages []string
	for err != nil {
		messages = append(messages, err.Error())
		if perr, ok := err.(*pongo2.Error); ok && perr.OrigError != nil {
			err = perr.OrigError
			continue
		}
		err = errors.Unwrap(err)
	}
	return messages
}

// flattenError joins every level of err's cause chain into a single
// printable message. The engine's errors are often multi-level (render
// failed, in template X, unknown tag Y); joining them loses nothing while
// staying on one line.
func flattenError(err error) string {
	return strings.Join(causeChain(err), " - ")
}
