package room

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
)

type fakeRoomRepo struct {
	created *Room
	updated *Room
	deleted uuid.UUID
	byID    *Room
	rooms   []Room
}

func (f *fakeRoomRepo) Create(ctx context.Context, room *Room) error {
	f.created = room
	return nil
}
func (f *fakeRoomRepo) List(ctx context.Context) ([]Room, error) { return f.rooms, nil }
func (f *fakeRoomRepo) GetByID(ctx context.Context, id uuid.UUID) (*Room, error) {
	if f.byID != nil && f.byID.ID == id {
		return f.byID, nil
	}
	return nil, nil
}
func (f *fakeRoomRepo) Update(ctx context.Context, room *Room) error {
	f.updated = room
	return nil
}
func (f *fakeRoomRepo) Delete(ctx context.Context, id uuid.UUID) error {
	f.deleted = id
	return nil
}

type fakeBookingCounter struct {
	active int
}

func (f *fakeBookingCounter) CountActiveByRoom(ctx context.Context, roomID uuid.UUID) (int, error) {
	return f.active, nil
}

func validCreateRequest() *CreateRequest {
	return &CreateRequest{
		RoomNumber: "101",
		Type:       "Standard",
		Price:      "99.99",
		Amenities:  []string{"wifi", "tv"},
		Beds:       "2",
	}
}

func TestCreateRoomSuccess(t *testing.T) {
	repo := &fakeRoomRepo{}
	svc := NewService(repo, &fakeBookingCounter{})

	rm, err := svc.Create(context.Background(), "admin", validCreateRequest())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if rm.RoomNumber != 101 || rm.Price != 99.99 || rm.Beds != 2 {
		t.Fatalf("unexpected room: %+v", rm)
	}
	if !rm.Availability {
		t.Fatal("new room should default to available")
	}
	if repo.created == nil {
		t.Fatal("expected room to be persisted")
	}
}

func TestCreateRoomRequiresAdmin(t *testing.T) {
	svc := NewService(&fakeRoomRepo{}, &fakeBookingCounter{})

	_, err := svc.Create(context.Background(), "customer", validCreateRequest())
	if !errors.Is(err, ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}

func TestCreateRoomValidationOrder(t *testing.T) {
	svc := NewService(&fakeRoomRepo{}, &fakeBookingCounter{})

	cases := []struct {
		name   string
		mutate func(*CreateRequest)
		want   error
	}{
		{"missing fields", func(r *CreateRequest) { r.Price = "" }, ErrMissingFields},
		{"bad room number", func(r *CreateRequest) { r.RoomNumber = "101A" }, ErrInvalidRoomNumber},
		{"bad type", func(r *CreateRequest) { r.Type = "Penthouse" }, ErrInvalidType},
		{"bad price", func(r *CreateRequest) { r.Price = "100.005" }, ErrInvalidPrice},
		{"bad beds", func(r *CreateRequest) { r.Beds = "two" }, ErrInvalidBeds},
		// Room number is checked before type: both invalid, number wins.
		{"number before type", func(r *CreateRequest) { r.RoomNumber = "abc"; r.Type = "abc" }, ErrInvalidRoomNumber},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := validCreateRequest()
			tc.mutate(req)
			_, err := svc.Create(context.Background(), "admin", req)
			if !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}
}

func TestUpdateRoomPartialPatch(t *testing.T) {
	existing := &Room{
		ID:           uuid.New(),
		RoomNumber:   101,
		Type:         TypeStandard,
		Price:        50,
		Amenities:    []string{"wifi"},
		Beds:         2,
		Availability: true,
	}
	repo := &fakeRoomRepo{byID: existing}
	svc := NewService(repo, &fakeBookingCounter{})

	rm, err := svc.Update(context.Background(), "admin", existing.ID, &UpdateRequest{Price: "75.50"})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if rm.Price != 75.50 {
		t.Errorf("expected price 75.50, got %v", rm.Price)
	}
	if rm.RoomNumber != 101 || rm.Beds != 2 || !rm.Availability {
		t.Errorf("untouched fields must survive the patch: %+v", rm)
	}
	if repo.updated == nil {
		t.Fatal("expected update to be persisted")
	}
}

func TestUpdateRoomUnknownID(t *testing.T) {
	svc := NewService(&fakeRoomRepo{}, &fakeBookingCounter{})

	_, err := svc.Update(context.Background(), "admin", uuid.New(), &UpdateRequest{Price: "75"})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestDeleteRoomBlockedByActiveBookings(t *testing.T) {
	existing := &Room{ID: uuid.New(), RoomNumber: 101, Type: TypeStandard}
	repo := &fakeRoomRepo{byID: existing}
	svc := NewService(repo, &fakeBookingCounter{active: 1})

	_, err := svc.Delete(context.Background(), "admin", existing.ID)
	if !errors.Is(err, ErrHasActiveBookings) {
		t.Fatalf("expected ErrHasActiveBookings, got %v", err)
	}
	if repo.deleted != uuid.Nil {
		t.Fatal("delete must not reach the repository")
	}
}

func TestDeleteRoomSuccess(t *testing.T) {
	existing := &Room{ID: uuid.New(), RoomNumber: 101, Type: TypeStandard}
	repo := &fakeRoomRepo{byID: existing}
	svc := NewService(repo, &fakeBookingCounter{})

	rm, err := svc.Delete(context.Background(), "admin", existing.ID)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if rm.ID != existing.ID {
		t.Fatal("expected the deleted room to be returned")
	}
	if repo.deleted != existing.ID {
		t.Fatal("expected delete to reach the repository")
	}
}
