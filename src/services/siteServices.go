package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/especializacion-sena/sitios-backend/src/dtos"
	"github.com/especializacion-sena/sitios-backend/src/models"
	"github.com/go-playground/validator/v10"
	excelize "github.com/xuri/excelize/v2"
	"gorm.io/gorm"
)

type SiteService struct {
	db *gorm.DB
}

// NewSiteService creates a new instance of SiteService
func NewSiteService(db *gorm.DB) *SiteService {
	return &SiteService{db: db}
}

// GetAllSites retrieves every site row
func (s *SiteService) GetAllSites(ctx context.Context) ([]models.SiteModel, error) {
	var sites []models.SiteModel
	result := s.db.WithContext(ctx).Order("id").Find(&sites)
	if result.Error != nil {
		return nil, result.Error
	}
	return sites, nil
}

// GetSiteByID returns the rows matching id: zero or one
func (s *SiteService) GetSiteByID(ctx context.Context, id int) ([]models.SiteModel, error) {
	sites := []models.SiteModel{}
	result := s.db.WithContext(ctx).Where("id = ?", id).Find(&sites)
	if result.Error != nil {
		return nil, result.Error
	}
	return sites, nil
}

// CreateSite inserts a new site. The id is always assigned by the store.
func (s *SiteService) CreateSite(ctx context.Context, site *models.SiteModel) error {
	site.Id = 0
	return s.db.WithContext(ctx).Create(site).Error
}

// UpdateSite writes only the supplied columns in a single UPDATE and
// returns the number of affected rows.
func (s *SiteService) UpdateSite(ctx context.Context, id int, changes dtos.UpdateSiteRequest) (int64, error) {
	columns := map[string]any{}
	if changes.Name != "" {
		columns["name"] = changes.Name
	}
	if changes.Info != "" {
		columns["info"] = changes.Info
	}
	if changes.Rate != 0 {
		columns["rate"] = int(changes.Rate)
	}
	if changes.Coords != "" {
		columns["coords"] = changes.Coords
	}
	if len(columns) == 0 {
		return 0, nil
	}

	result := s.db.WithContext(ctx).Model(&models.SiteModel{}).Where("id = ?", id).Updates(columns)
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}

// DeleteSite removes a site and returns the number of affected rows
func (s *SiteService) DeleteSite(ctx context.Context, id int) (int64, error) {
	result := s.db.WithContext(ctx).Where("id = ?", id).Delete(&models.SiteModel{})
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}

// ImportResult summarises a spreadsheet import
type ImportResult struct {
	Imported int
	Errors   []string
}

var siteColumns = []string{"name", "info", "photo", "rate", "coords"}

// ImportSitesFromExcel loads sites from the first sheet of an xlsx workbook.
// The first row is a header naming the columns; invalid rows are reported
// and skipped.
func (s *SiteService) ImportSitesFromExcel(ctx context.Context, r io.Reader) (*ImportResult, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("archivo excel inválido: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, errors.New("el archivo excel no tiene hojas")
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("no se pudo leer la hoja %s: %w", sheets[0], err)
	}
	if len(rows) == 0 {
		return nil, errors.New("el archivo excel está vacío")
	}

	index := map[string]int{}
	for i, header := range rows[0] {
		index[strings.ToLower(strings.TrimSpace(header))] = i
	}
	for _, column := range siteColumns {
		if _, ok := index[column]; !ok {
			return nil, fmt.Errorf("falta la columna %q en la hoja %s", column, sheets[0])
		}
	}

	cell := func(row []string, column string) string {
		i := index[column]
		if i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}

	result := &ImportResult{Errors: []string{}}

	for i, row := range rows[1:] {
		line := i + 2

		if len(strings.Join(row, "")) == 0 {
			continue
		}

		req := dtos.CreateSiteRequest{
			Name:   cell(row, "name"),
			Info:   cell(row, "info"),
			Photo:  cell(row, "photo"),
			Coords: cell(row, "coords"),
		}
		if raw := cell(row, "rate"); raw != "" {
			rate, err := strconv.Atoi(raw)
			if err != nil {
				result.Errors = append(result.Errors, fmt.Sprintf("fila %d: rate %q no es un número", line, raw))
				continue
			}
			req.Rate = dtos.Rate(rate)
		}

		if err := bindingValidator.Struct(req); err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("fila %d: %s", line, missingFields(err)))
			continue
		}

		site := models.SiteModel{
			Name:   req.Name,
			Info:   req.Info,
			Photo:  req.Photo,
			Rate:   int(req.Rate),
			Coords: req.Coords,
		}
		if err := s.CreateSite(ctx, &site); err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("fila %d: %v", line, err))
			continue
		}
		result.Imported++
	}

	return result, nil
}

func missingFields(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err.Error()
	}
	fields := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, strings.ToLower(fe.Field()))
	}
	return "hacen falta parametros: " + strings.Join(fields, ", ")
}
