package mysql

import (
	"context"
	"sort"

	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"

	"github.com/filmorate/backend/domain"
	"github.com/filmorate/backend/internal/repository/mysql/model"
)

type filmRepository struct {
	DB *gorm.DB
}

var _ domain.FilmDBRepository = (*filmRepository)(nil)

// NewFilmRepository creates the database operation layer for films.
func NewFilmRepository(db *gorm.DB) *filmRepository {
	return &filmRepository{db}
}

func (m *filmRepository) GetByID(ctx context.Context, id int64) (domain.Film, error) {
	var film model.Film
	if err := m.DB.WithContext(ctx).First(&film, "id = ?", id).Error; err != nil {
		return domain.Film{}, domain.ErrNotFound
	}

	res, err := m.attachDetails(ctx, []domain.Film{film.ToDomain()})
	if err != nil {
		return domain.Film{}, err
	}
	return res[0], nil
}

func (m *filmRepository) GetByIDs(ctx context.Context, ids []int64) ([]domain.Film, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var films []model.Film
	err := m.DB.WithContext(ctx).Where("id IN ?", ids).Find(&films).Error
	if err != nil {
		return nil, err
	}
	return m.attachDetails(ctx, toDomainFilms(films))
}

func (m *filmRepository) GetAll(ctx context.Context) ([]domain.Film, error) {
	var films []model.Film
	err := m.DB.WithContext(ctx).Find(&films).Error
	if err != nil {
		return nil, err
	}
	return m.attachDetails(ctx, toDomainFilms(films))
}

func (m *filmRepository) Store(ctx context.Context, f *domain.Film) error {
	filmModel := model.NewFilmFromDomain(f)
	return m.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(filmModel).Error; err != nil {
			return err
		}
		f.ID = filmModel.ID
		return replaceFilmLinks(tx, f, false)
	})
}

func (m *filmRepository) Update(ctx context.Context, f *domain.Film) error {
	filmModel := model.NewFilmFromDomain(f)
	return m.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Model(&model.Film{}).
			Where("id = ?", f.ID).
			Select("Name", "Description", "ReleaseDate", "Duration", "MpaID").
			Updates(filmModel).Error
		if err != nil {
			return err
		}
		return replaceFilmLinks(tx, f, true)
	})
}

func (m *filmRepository) Delete(ctx context.Context, id int64) error {
	result := m.DB.WithContext(ctx).Delete(&model.Film{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (m *filmRepository) GetPopular(ctx context.Context, count int, genreID int64, year int) ([]domain.Film, error) {
	q := m.popularityQuery(ctx)
	if genreID != 0 {
		q = q.Joins("JOIN film_genres fg ON fg.film_id = films.id AND fg.genre_id = ?", genreID)
	}
	if year != 0 {
		q = q.Where("YEAR(films.release_date) = ?", year)
	}

	var films []model.Film
	err := q.Limit(count).Find(&films).Error
	if err != nil {
		return nil, err
	}
	return m.attachDetails(ctx, toDomainFilms(films))
}

func (m *filmRepository) GetCommon(ctx context.Context, userID, friendID int64) ([]domain.Film, error) {
	var films []model.Film
	err := m.popularityQuery(ctx).
		Joins("JOIN film_likes l1 ON l1.film_id = films.id AND l1.user_id = ?", userID).
		Joins("JOIN film_likes l2 ON l2.film_id = films.id AND l2.user_id = ?", friendID).
		Find(&films).Error
	if err != nil {
		return nil, err
	}
	return m.attachDetails(ctx, toDomainFilms(films))
}

func (m *filmRepository) GetByDirectorSortedByYear(ctx context.Context, directorID int64) ([]domain.Film, error) {
	var films []model.Film
	err := m.DB.WithContext(ctx).Model(&model.Film{}).
		Joins("JOIN film_directors fd ON fd.film_id = films.id AND fd.director_id = ?", directorID).
		Order("films.release_date").
		Find(&films).Error
	if err != nil {
		return nil, err
	}
	return m.attachDetails(ctx, toDomainFilms(films))
}

func (m *filmRepository) GetByDirectorSortedByLikes(ctx context.Context, directorID int64) ([]domain.Film, error) {
	var films []model.Film
	err := m.popularityQuery(ctx).
		Joins("JOIN film_directors fd ON fd.film_id = films.id AND fd.director_id = ?", directorID).
		Find(&films).Error
	if err != nil {
		return nil, err
	}
	return m.attachDetails(ctx, toDomainFilms(films))
}

func (m *filmRepository) SearchByTitle(ctx context.Context, query string) ([]domain.Film, error) {
	var films []model.Film
	err := m.popularityQuery(ctx).
		Where("LOWER(films.name) LIKE LOWER(?)", "%"+query+"%").
		Find(&films).Error
	if err != nil {
		return nil, err
	}
	return m.attachDetails(ctx, toDomainFilms(films))
}

func (m *filmRepository) SearchByDirector(ctx context.Context, query string) ([]domain.Film, error) {
	var films []model.Film
	err := m.popularityQuery(ctx).
		Joins("JOIN film_directors fd ON fd.film_id = films.id").
		Joins("JOIN directors d ON d.director_id = fd.director_id").
		Where("LOWER(d.name) LIKE LOWER(?)", "%"+query+"%").
		Find(&films).Error
	if err != nil {
		return nil, err
	}
	return m.attachDetails(ctx, toDomainFilms(films))
}

func (m *filmRepository) SearchByTitleAndDirector(ctx context.Context, query string) ([]domain.Film, error) {
	var films []model.Film
	err := m.popularityQuery(ctx).
		Joins("LEFT JOIN film_directors fd ON fd.film_id = films.id").
		Joins("LEFT JOIN directors d ON d.director_id = fd.director_id").
		Where("LOWER(films.name) LIKE LOWER(?) OR LOWER(d.name) LIKE LOWER(?)",
			"%"+query+"%", "%"+query+"%").
		Find(&films).Error
	if err != nil {
		return nil, err
	}
	return m.attachDetails(ctx, toDomainFilms(films))
}

// popularityQuery builds the base query ordering films by like count
// descending.
func (m *filmRepository) popularityQuery(ctx context.Context) *gorm.DB {
	return m.DB.WithContext(ctx).Model(&model.Film{}).
		Select("films.*, COUNT(fl.user_id) AS likes_count").
		Joins("LEFT JOIN film_likes fl ON fl.film_id = films.id").
		Group("films.id").
		Order("likes_count DESC")
}

func replaceFilmLinks(tx *gorm.DB, f *domain.Film, deleteOld bool) error {
	if deleteOld {
		if err := tx.Where("film_id = ?", f.ID).Delete(&model.FilmGenre{}).Error; err != nil {
			return err
		}
		if err := tx.Where("film_id = ?", f.ID).Delete(&model.FilmDirector{}).Error; err != nil {
			return err
		}
	}

	if len(f.Genres) > 0 {
		links := make([]model.FilmGenre, 0, len(f.Genres))
		for _, g := range f.Genres {
			links = append(links, model.FilmGenre{FilmID: f.ID, GenreID: g.ID})
		}
		if err := tx.Create(&links).Error; err != nil {
			return err
		}
	}
	if len(f.Directors) > 0 {
		links := make([]model.FilmDirector, 0, len(f.Directors))
		for _, d := range f.Directors {
			links = append(links, model.FilmDirector{FilmID: f.ID, DirectorID: d.ID})
		}
		if err := tx.Create(&links).Error; err != nil {
			return err
		}
	}
	return nil
}

type filmGenreRow struct {
	FilmID int64
	ID     int64
	Name   string
}

type filmDirectorRow struct {
	FilmID int64
	ID     int64
	Name   string
}

// attachDetails loads ratings, genres and directors for a batch of films.
// The three lookups are independent and run concurrently.
func (m *filmRepository) attachDetails(ctx context.Context, films []domain.Film) ([]domain.Film, error) {
	if len(films) == 0 {
		return []domain.Film{}, nil
	}

	filmIDs := make([]int64, 0, len(films))
	mpaIDs := make([]int64, 0, len(films))
	for _, f := range films {
		filmIDs = append(filmIDs, f.ID)
		mpaIDs = append(mpaIDs, f.Mpa.ID)
	}

	var (
		ratings      []model.MpaRating
		genreRows    []filmGenreRow
		directorRows []filmDirectorRow
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return m.DB.WithContext(gctx).
			Where("mpa_id IN ?", mpaIDs).
			Find(&ratings).Error
	})
	g.Go(func() error {
		return m.DB.WithContext(gctx).Table("film_genres").
			Select("film_genres.film_id AS film_id, genres.genre_id AS id, genres.name AS name").
			Joins("JOIN genres ON genres.genre_id = film_genres.genre_id").
			Where("film_genres.film_id IN ?", filmIDs).
			Scan(&genreRows).Error
	})
	g.Go(func() error {
		return m.DB.WithContext(gctx).Table("film_directors").
			Select("film_directors.film_id AS film_id, directors.director_id AS id, directors.name AS name").
			Joins("JOIN directors ON directors.director_id = film_directors.director_id").
			Where("film_directors.film_id IN ?", filmIDs).
			Scan(&directorRows).Error
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	mpaMap := make(map[int64]domain.MpaRating, len(ratings))
	for i := range ratings {
		mpaMap[ratings[i].ID] = ratings[i].ToDomain()
	}
	genreMap := make(map[int64][]domain.Genre)
	for _, row := range genreRows {
		genreMap[row.FilmID] = append(genreMap[row.FilmID], domain.Genre{ID: row.ID, Name: row.Name})
	}
	directorMap := make(map[int64][]domain.Director)
	for _, row := range directorRows {
		directorMap[row.FilmID] = append(directorMap[row.FilmID], domain.Director{ID: row.ID, Name: row.Name})
	}

	for i := range films {
		if mpa, ok := mpaMap[films[i].Mpa.ID]; ok {
			films[i].Mpa = mpa
		}
		films[i].Genres = genreMap[films[i].ID]
		sort.Slice(films[i].Genres, func(a, b int) bool {
			return films[i].Genres[a].ID < films[i].Genres[b].ID
		})
		films[i].Directors = directorMap[films[i].ID]
	}
	return films, nil
}

func toDomainFilms(films []model.Film) []domain.Film {
	res := make([]domain.Film, len(films))
	for i := range films {
		res[i] = films[i].ToDomain()
	}
	return res
}
