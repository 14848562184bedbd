package generator

import (
	"context"
	"fmt"
	"log"
	"path/filepath"
	"time"

	"vo-scaffolding/internal/apperr"
	"vo-scaffolding/internal/config"
	"vo-scaffolding/internal/database"
	"vo-scaffolding/internal/models"
	"vo-scaffolding/internal/utils"
)

type Generator struct {
	config            *config.Config
	source            database.MetadataSource
	templateProcessor *TemplateProcessor
}

// Result summarizes a generation run.
type Result struct {
	Entities int
	Files    []string
	Elapsed  time.Duration
}

// RenderedEntity is an entity with its generated source.
type RenderedEntity struct {
	Entity   models.Entity
	FileName string
	Source   string
}

func NewGenerator(cfg *config.Config, source database.MetadataSource, templateProcessor *TemplateProcessor) *Generator {
	return &Generator{
		config:            cfg,
		source:            source,
		templateProcessor: templateProcessor,
	}
}

// Generate reads the schema, renders every entity and writes one file per
// entity into the output directory. Files written before a failure stay on disk.
func (g *Generator) Generate(ctx context.Context) (*Result, error) {
	start := time.Now()

	rendered, err := g.Preview(ctx)
	if err != nil {
		return nil, err
	}

	log.Printf("Writing file(s) to %s", g.config.OutputDir)
	if err := utils.EnsureDirectory(g.config.OutputDir); err != nil {
		return nil, apperr.Write(fmt.Sprintf("error creating directory %s", g.config.OutputDir), err)
	}

	result := &Result{Entities: len(rendered)}
	for _, r := range rendered {
		outputPath := filepath.Join(g.config.OutputDir, r.FileName)
		if err := utils.WriteFile(outputPath, []byte(r.Source)); err != nil {
			return nil, apperr.Write(fmt.Sprintf("error writing file %s", outputPath), err)
		}
		result.Files = append(result.Files, outputPath)
	}

	result.Elapsed = time.Since(start)
	return result, nil
}

// Preview reads the schema and renders every entity without writing.
func (g *Generator) Preview(ctx context.Context) ([]RenderedEntity, error) {
	log.Println("Reading database meta data...")
	entities, err := database.ReadSchema(ctx, g.source, database.ReadOptions{
		Pattern: g.config.Pattern(),
		Prefix:  g.config.Prefix,
		Suffix:  g.config.Suffix,
	})
	if err != nil {
		return nil, err
	}

	rendered := make([]RenderedEntity, 0, len(entities))
	for _, entity := range entities {
		source, err := g.templateProcessor.Render(entity)
		if err != nil {
			return nil, apperr.Write(fmt.Sprintf("error rendering %s", entity.Name), err)
		}
		rendered = append(rendered, RenderedEntity{
			Entity:   entity,
			FileName: FileName(entity),
			Source:   source,
		})
	}

	return rendered, nil
}

// Connect opens the database described by cfg and returns a generator bound
// to it. The caller must call the returned close function.
func Connect(ctx context.Context, cfg *config.Config) (*Generator, func(), error) {
	templateProcessor, err := NewTemplateProcessor(cfg.PackageName)
	if err != nil {
		return nil, nil, err
	}

	scanner := database.NewScanner()
	if err := scanner.Connect(ctx, cfg.Connection()); err != nil {
		return nil, nil, err
	}
	log.Printf("Connected to %s database", scanner.Dialect().Name())

	return NewGenerator(cfg, scanner, templateProcessor), scanner.Disconnect, nil
}

// Run performs a complete generation from the configuration at configPath.
func Run(ctx context.Context, configPath string) (*Result, error) {
	start := time.Now()

	log.Printf("Reading configuration: %s ...", configPath)
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return nil, err
	}

	gen, disconnect, err := Connect(ctx, cfg)
	if err != nil {
		return nil, err
	}
	defer disconnect()

	result, err := gen.Generate(ctx)
	if err != nil {
		return nil, err
	}
	result.Elapsed = time.Since(start)
	return result, nil
}
