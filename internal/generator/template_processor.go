package generator

import (
	"bytes"
	"embed"
	"fmt"
	"io/fs"
	"path"
	"slices"
	"strings"
	"text/template"

	"vo-scaffolding/internal/models"
	"vo-scaffolding/internal/utils"
)

// SourceExt is the extension of generated files.
const SourceExt = ".java"

const voTemplate = "vo.java.tpl"

//go:embed templates/*.tpl
var templateFS embed.FS

type TemplateProcessor struct {
	templates   map[string]*template.Template
	funcMap     template.FuncMap
	packageName string
}

// entityData is what the class template sees.
type entityData struct {
	Package string
	Imports []string
	Name    string
	Columns []models.Column
}

func NewTemplateProcessor(packageName string) (*TemplateProcessor, error) {
	tp := &TemplateProcessor{
		templates:   make(map[string]*template.Template),
		packageName: strings.TrimSpace(packageName),
		funcMap: template.FuncMap{
			"capitalize": utils.Capitalize,
		},
	}

	if err := tp.loadTemplates(); err != nil {
		return nil, err
	}

	return tp, nil
}

func (tp *TemplateProcessor) loadTemplates() error {
	templateFiles, err := fs.Glob(templateFS, "templates/*.tpl")
	if err != nil {
		return fmt.Errorf("error listing template files: %w", err)
	}

	for _, templateFile := range templateFiles {
		templateName := path.Base(templateFile)
		content, err := templateFS.ReadFile(templateFile)
		if err != nil {
			return fmt.Errorf("error reading template %s: %w", templateFile, err)
		}

		tmpl, err := template.New(templateName).Funcs(tp.funcMap).Option("missingkey=error").Parse(string(content))
		if err != nil {
			return fmt.Errorf("error parsing template %s: %w", templateFile, err)
		}

		tp.templates[templateName] = tmpl
	}

	if _, ok := tp.templates[voTemplate]; !ok {
		return fmt.Errorf("template not found: %s", voTemplate)
	}

	return nil
}

func (tp *TemplateProcessor) Process(templateName string, data any) (string, error) {
	tmpl, exists := tp.templates[templateName]
	if !exists {
		return "", fmt.Errorf("template not found: %s", templateName)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("error executing template %s: %w", templateName, err)
	}

	return buf.String(), nil
}

// Render produces the complete source of entity. The output depends on
// nothing but the entity and the package name.
func (tp *TemplateProcessor) Render(entity models.Entity) (string, error) {
	imports := entity.Imports()
	slices.Sort(imports)

	return tp.Process(voTemplate, entityData{
		Package: tp.packageName,
		Imports: imports,
		Name:    entity.Name,
		Columns: entity.Columns,
	})
}

// FileName returns the name of the file holding entity.
func FileName(entity models.Entity) string {
	return entity.Name + SourceExt
}
