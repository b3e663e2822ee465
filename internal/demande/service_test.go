package demande

import (
	"context"
	"errors"
	"testing"

	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"

	"github.com/aosmicepp/platform/internal"
	"github.com/aosmicepp/platform/internal/rbac"
	"github.com/aosmicepp/platform/internal/user"
	"github.com/aosmicepp/platform/pkg/logger"
)

func TestDemande(t *testing.T) {
	gomega.RegisterFailHandler(ginkgo.Fail)
	ginkgo.RunSpecs(t, "Demande Module Suite")
}

type mockDemandeRepository struct {
	byID   map[int64]*Demande
	nextID int64
}

func newMockDemandeRepository(seed ...*Demande) *mockDemandeRepository {
	repo := &mockDemandeRepository{byID: make(map[int64]*Demande), nextID: 1}
	for _, d := range seed {
		repo.byID[d.ID] = d
		if d.ID >= repo.nextID {
			repo.nextID = d.ID + 1
		}
	}
	return repo
}

func (m *mockDemandeRepository) GetAll() ([]*Demande, error) {
	out := make([]*Demande, 0, len(m.byID))
	for _, d := range m.byID {
		out = append(out, d)
	}
	return out, nil
}

func (m *mockDemandeRepository) GetByID(id int64) (*Demande, error) {
	if d, exists := m.byID[id]; exists {
		return d, nil
	}
	return nil, errors.New("demande not found")
}

func (m *mockDemandeRepository) GetByUserID(userID int64) ([]*Demande, error) {
	var out []*Demande
	for _, d := range m.byID {
		if d.UserID == userID {
			out = append(out, d)
		}
	}
	return out, nil
}

func (m *mockDemandeRepository) GetRecent(limit int) ([]*Demande, error) {
	return m.GetAll()
}

func (m *mockDemandeRepository) Create(d *Demande) error {
	d.ID = m.nextID
	m.nextID++
	m.byID[d.ID] = d
	return nil
}

func (m *mockDemandeRepository) Update(d *Demande) error {
	m.byID[d.ID] = d
	return nil
}

func (m *mockDemandeRepository) Count() (int64, error) {
	return int64(len(m.byID)), nil
}

func (m *mockDemandeRepository) CountByStatus(status Status) (int64, error) {
	var count int64
	for _, d := range m.byID {
		if d.Status == status {
			count++
		}
	}
	return count, nil
}

type mockUserDirectory struct {
	byID map[int64]*user.User
}

func (m *mockUserDirectory) GetByID(id int64) (*user.User, error) {
	if u, exists := m.byID[id]; exists {
		return u, nil
	}
	return nil, errors.New("user not found")
}

var _ = ginkgo.Describe("DemandeService", func() {
	var (
		service  *Service
		mockRepo *mockDemandeRepository
		users    *mockUserDirectory
		ctx      context.Context
	)

	ginkgo.BeforeEach(func() {
		ctx = context.Background()
		mockRepo = newMockDemandeRepository(
			&Demande{ID: 1, Subject: "Colonie de vacances", Status: StatusEnAttente, UserID: 10},
			&Demande{ID: 2, Subject: "Aide sociale", Status: StatusEnCours, UserID: 10},
			&Demande{ID: 3, Subject: "Billet de train", Status: StatusTerminee, UserID: 11},
		)
		users = &mockUserDirectory{byID: map[int64]*user.User{
			20: {ID: 20, Role: rbac.RoleSupport.String(), IsActive: true},
			21: {ID: 21, Role: rbac.RoleSupport.String(), IsActive: false},
			22: {ID: 22, Role: rbac.RoleAgent.String(), IsActive: true},
		}}
		service = NewService(mockRepo, users, nil, logger.L())
	})

	ginkgo.Describe("Create", func() {
		ginkgo.It("should open the demande in EN_ATTENTE for the caller", func() {
			d, err := service.Create(ctx, 10, CreateDemandeDTO{
				Subject:     "Subvention scolaire",
				Description: "Demande de subvention pour la rentrée",
				ServiceType: "SOCIAL",
			})

			gomega.Expect(err).ToNot(gomega.HaveOccurred())
			gomega.Expect(d.Status).To(gomega.Equal(StatusEnAttente))
			gomega.Expect(d.UserID).To(gomega.Equal(int64(10)))
			gomega.Expect(d.ID).ToNot(gomega.BeZero())
		})

		ginkgo.It("should reject a blank subject", func() {
			_, err := service.Create(ctx, 10, CreateDemandeDTO{Description: "x", ServiceType: "SOCIAL"})
			gomega.Expect(err).To(gomega.HaveOccurred())
		})
	})

	ginkgo.Describe("UpdateStatus", func() {
		ginkgo.It("should allow EN_ATTENTE to EN_COURS", func() {
			d, err := service.UpdateStatus(ctx, 1, UpdateStatusDTO{Status: "EN_COURS"})

			gomega.Expect(err).ToNot(gomega.HaveOccurred())
			gomega.Expect(d.Status).To(gomega.Equal(StatusEnCours))
			gomega.Expect(d.ResolvedAt).To(gomega.BeNil())
		})

		ginkgo.It("should stamp the resolution time on a terminal transition", func() {
			d, err := service.UpdateStatus(ctx, 2, UpdateStatusDTO{Status: "TERMINEE", Comment: "Dossier traité"})

			gomega.Expect(err).ToNot(gomega.HaveOccurred())
			gomega.Expect(d.Status).To(gomega.Equal(StatusTerminee))
			gomega.Expect(d.ResolvedAt).ToNot(gomega.BeNil())
			gomega.Expect(d.Comment).To(gomega.Equal("Dossier traité"))
		})

		ginkgo.It("should reject skipping EN_COURS", func() {
			_, err := service.UpdateStatus(ctx, 1, UpdateStatusDTO{Status: "TERMINEE"})

			appErr, ok := internal.IsAppError(err)
			gomega.Expect(ok).To(gomega.BeTrue())
			gomega.Expect(appErr.Code).To(gomega.Equal(internal.ErrCodeInvalidStatus))
		})

		ginkgo.It("should refuse to touch a terminal demande", func() {
			_, err := service.UpdateStatus(ctx, 3, UpdateStatusDTO{Status: "EN_COURS"})
			gomega.Expect(err).To(gomega.Equal(internal.ErrDemandeImmutable))
		})

		ginkgo.It("should reject an unknown status value", func() {
			_, err := service.UpdateStatus(ctx, 1, UpdateStatusDTO{Status: "DONE"})
			gomega.Expect(err).To(gomega.HaveOccurred())
		})
	})

	ginkgo.Describe("Assign", func() {
		ginkgo.It("should assign an active support user", func() {
			assignee := int64(20)
			d, err := service.Assign(ctx, 1, AssignDTO{AssigneeID: &assignee})

			gomega.Expect(err).ToNot(gomega.HaveOccurred())
			gomega.Expect(*d.AssigneeID).To(gomega.Equal(int64(20)))
		})

		ginkgo.It("should unassign when the assignee is nil", func() {
			assignee := int64(20)
			_, err := service.Assign(ctx, 1, AssignDTO{AssigneeID: &assignee})
			gomega.Expect(err).ToNot(gomega.HaveOccurred())

			d, err := service.Assign(ctx, 1, AssignDTO{AssigneeID: nil})
			gomega.Expect(err).ToNot(gomega.HaveOccurred())
			gomega.Expect(d.AssigneeID).To(gomega.BeNil())
		})

		ginkgo.It("should reject an inactive support user", func() {
			assignee := int64(21)
			_, err := service.Assign(ctx, 1, AssignDTO{AssigneeID: &assignee})
			gomega.Expect(err).To(gomega.Equal(internal.ErrAssigneeNotSupport))
		})

		ginkgo.It("should reject a non-support role", func() {
			assignee := int64(22)
			_, err := service.Assign(ctx, 1, AssignDTO{AssigneeID: &assignee})
			gomega.Expect(err).To(gomega.Equal(internal.ErrAssigneeNotSupport))
		})

		ginkgo.It("should refuse assignment on a terminal demande", func() {
			assignee := int64(20)
			_, err := service.Assign(ctx, 3, AssignDTO{AssigneeID: &assignee})
			gomega.Expect(err).To(gomega.Equal(internal.ErrDemandeImmutable))
		})
	})

	ginkgo.Describe("CountPending", func() {
		ginkgo.It("should count only EN_ATTENTE demandes", func() {
			count, err := service.CountPending()
			gomega.Expect(err).ToNot(gomega.HaveOccurred())
			gomega.Expect(count).To(gomega.Equal(int64(1)))
		})
	})
})
