package trivia

import (
	"context"
	"fmt"
	"testing"

	"github.com/yungbote/trivia-backend/internal/data/repos/testutil"
	types "github.com/yungbote/trivia-backend/internal/domain"
)

func TestQuestionRepoCreateSaveDelete(t *testing.T) {
	db := testutil.DB(t)
	repo := NewQuestionRepo(db, testutil.Logger(t))
	ctx := context.Background()

	science := testutil.SeedCategory(t, ctx, db, "Science")
	first := testutil.SeedQuestion(t, ctx, db, "What is H2O?", "Water", 1, science)

	created, err := repo.Create(ctx, nil, &types.Question{
		Question:   testutil.PtrString("What is NaCl?"),
		Answer:     testutil.PtrString("Salt"),
		Difficulty: testutil.PtrInt(2),
		CategoryID: testutil.PtrUint(science.ID),
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if created.ID <= first.ID {
		t.Fatalf("Create: expected id > %d, got %d", first.ID, created.ID)
	}

	created.Answer = testutil.PtrString("Sodium chloride")
	if err := repo.Save(ctx, nil, created); err != nil {
		t.Fatalf("Save: %v", err)
	}
	got, err := repo.GetByID(ctx, nil, created.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got == nil || got.Answer == nil || *got.Answer != "Sodium chloride" {
		t.Fatalf("Save: unexpected row %+v", got)
	}

	if err := repo.Delete(ctx, nil, got); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	gone, err := repo.GetByID(ctx, nil, created.ID)
	if err != nil {
		t.Fatalf("GetByID after delete: %v", err)
	}
	if gone != nil {
		t.Fatalf("expected nil after delete, got %+v", gone)
	}
}

func TestQuestionRepoCreateWithNullFields(t *testing.T) {
	db := testutil.DB(t)
	repo := NewQuestionRepo(db, testutil.Logger(t))
	ctx := context.Background()

	created, err := repo.Create(ctx, nil, &types.Question{})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	got, err := repo.GetByID(ctx, nil, created.ID)
	if err != nil || got == nil {
		t.Fatalf("GetByID: %v %+v", err, got)
	}
	if got.Question != nil || got.Answer != nil || got.Difficulty != nil || got.CategoryID != nil {
		t.Fatalf("expected NULL columns, got %+v", got)
	}
}

func TestQuestionRepoCreateRejectsUnknownCategory(t *testing.T) {
	db := testutil.DB(t)
	repo := NewQuestionRepo(db, testutil.Logger(t))

	_, err := repo.Create(context.Background(), nil, &types.Question{CategoryID: testutil.PtrUint(999)})
	if err == nil {
		t.Fatalf("expected foreign key violation")
	}
}

func TestQuestionRepoPaging(t *testing.T) {
	db := testutil.DB(t)
	repo := NewQuestionRepo(db, testutil.Logger(t))
	ctx := context.Background()

	art := testutil.SeedCategory(t, ctx, db, "Art")
	for i := 0; i < 12; i++ {
		testutil.SeedQuestion(t, ctx, db, fmt.Sprintf("q%02d", i), "a", 1, art)
	}
	testutil.SeedQuestion(t, ctx, db, "orphan", "a", 1, nil)

	count, err := repo.Count(ctx, nil)
	if err != nil {
		t.Fatalf("Count: %v", err)
	}
	if count != 13 {
		t.Fatalf("Count: got=%d want=13", count)
	}

	page, err := repo.ListPageWithCategory(ctx, nil, 10, 10)
	if err != nil {
		t.Fatalf("ListPageWithCategory: %v", err)
	}
	if len(page) != 3 {
		t.Fatalf("expected 3 rows on second page, got %d", len(page))
	}
	if page[0].CategoryType == nil || *page[0].CategoryType != "Art" {
		t.Fatalf("expected joined category type, got %+v", page[0])
	}
	if page[2].CategoryType != nil {
		t.Fatalf("expected nil category type for orphan, got %q", *page[2].CategoryType)
	}

	empty, err := repo.ListPageWithCategory(ctx, nil, 100, 10)
	if err != nil {
		t.Fatalf("ListPageWithCategory beyond end: %v", err)
	}
	if empty == nil || len(empty) != 0 {
		t.Fatalf("expected empty non-nil slice, got %v", empty)
	}
}

func TestQuestionRepoSearchAndCategory(t *testing.T) {
	db := testutil.DB(t)
	repo := NewQuestionRepo(db, testutil.Logger(t))
	ctx := context.Background()

	science := testutil.SeedCategory(t, ctx, db, "Science")
	history := testutil.SeedCategory(t, ctx, db, "History")
	h2o := testutil.SeedQuestion(t, ctx, db, "What is H2O?", "Water", 1, science)
	testutil.SeedQuestion(t, ctx, db, "Who was the first president?", "Washington", 2, history)

	found, err := repo.SearchByText(ctx, nil, "H2O")
	if err != nil {
		t.Fatalf("SearchByText: %v", err)
	}
	if len(found) != 1 || found[0].ID != h2o.ID {
		t.Fatalf("SearchByText: unexpected %+v", found)
	}

	// sqlite LIKE folds ASCII case
	lower, err := repo.SearchByText(ctx, nil, "h2o")
	if err != nil {
		t.Fatalf("SearchByText: %v", err)
	}
	if len(lower) != 1 || lower[0].ID != h2o.ID {
		t.Fatalf("SearchByText lower-case: unexpected %+v", lower)
	}

	// answers are not searched
	none, err := repo.SearchByText(ctx, nil, "Washington")
	if err != nil {
		t.Fatalf("SearchByText: %v", err)
	}
	if len(none) != 0 {
		t.Fatalf("expected no match on answer text, got %d", len(none))
	}

	inScience, err := repo.ListByCategoryID(ctx, nil, science.ID)
	if err != nil {
		t.Fatalf("ListByCategoryID: %v", err)
	}
	if len(inScience) != 1 || inScience[0].ID != h2o.ID {
		t.Fatalf("ListByCategoryID: unexpected %+v", inScience)
	}
}

func TestQuestionRepoQuizCandidates(t *testing.T) {
	db := testutil.DB(t)
	repo := NewQuestionRepo(db, testutil.Logger(t))
	ctx := context.Background()

	geo := testutil.SeedCategory(t, ctx, db, "Geography")
	sports := testutil.SeedCategory(t, ctx, db, "Sports")
	g1 := testutil.SeedQuestion(t, ctx, db, "g1", "a", 1, geo)
	testutil.SeedQuestion(t, ctx, db, "s1", "a", 1, sports)
	g2 := testutil.SeedQuestion(t, ctx, db, "g2", "a", 1, geo)
	g3 := testutil.SeedQuestion(t, ctx, db, "g3", "a", 1, geo)
	orphan := testutil.SeedQuestion(t, ctx, db, "orphan", "a", 1, nil)

	ids := func(qs []*types.Question) []uint {
		out := make([]uint, 0, len(qs))
		for _, q := range qs {
			out = append(out, q.ID)
		}
		return out
	}

	all, err := repo.ListQuizCandidates(ctx, nil, QuizFilter{CategoryID: &geo.ID})
	if err != nil {
		t.Fatalf("ListQuizCandidates: %v", err)
	}
	if got := ids(all); len(got) != 3 || got[0] != g1.ID {
		t.Fatalf("unexpected candidates %v", got)
	}

	bounded, err := repo.ListQuizCandidates(ctx, nil, QuizFilter{CategoryID: &geo.ID, MinQuestionID: int64(g2.ID)})
	if err != nil {
		t.Fatalf("ListQuizCandidates: %v", err)
	}
	if got := ids(bounded); len(got) != 2 || got[0] != g2.ID || got[1] != g3.ID {
		t.Fatalf("lower bound must keep ids >= %d, got %v", g2.ID, got)
	}

	excluded, err := repo.ListQuizCandidates(ctx, nil, QuizFilter{CategoryID: &geo.ID, ExcludeIDs: []uint{g1.ID, g3.ID}})
	if err != nil {
		t.Fatalf("ListQuizCandidates: %v", err)
	}
	if got := ids(excluded); len(got) != 1 || got[0] != g2.ID {
		t.Fatalf("exclusion list ignored: %v", got)
	}

	uncategorized, err := repo.ListQuizCandidates(ctx, nil, QuizFilter{})
	if err != nil {
		t.Fatalf("ListQuizCandidates: %v", err)
	}
	if got := ids(uncategorized); len(got) != 1 || got[0] != orphan.ID {
		t.Fatalf("nil category must match NULL category_id, got %v", got)
	}
}
