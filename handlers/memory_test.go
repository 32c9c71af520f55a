package handlers_test

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"

	"car-doctor-server/database"
	"car-doctor-server/model"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// memoryServices and memoryBookings stand in for the Mongo repositories.

type memoryServices struct {
	services []model.Service
	err      error
}

func (m *memoryServices) ListServices(ctx context.Context, search string, ascending bool) ([]model.Service, error) {
	if m.err != nil {
		return nil, m.err
	}
	found := []model.Service{}
	for _, service := range m.services {
		if strings.Contains(strings.ToLower(service.Title()), strings.ToLower(search)) {
			found = append(found, service)
		}
	}
	sort.SliceStable(found, func(i, j int) bool {
		if ascending {
			return found[i].Price() < found[j].Price()
		}
		return found[i].Price() > found[j].Price()
	})
	return found, nil
}

func (m *memoryServices) GetService(ctx context.Context, id string) (model.Service, error) {
	objId, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", database.ErrInvalidID, id)
	}
	for _, service := range m.services {
		if service["_id"] == objId {
			projected := model.Service{}
			for _, field := range []string{"_id", "title", "service_id", "price", "img"} {
				if value, ok := service[field]; ok {
					projected[field] = value
				}
			}
			return projected, nil
		}
	}
	return nil, nil
}

type memoryBookings struct {
	mu        sync.Mutex
	bookings  []model.Booking
	listCalls int
	err       error
}

func (m *memoryBookings) CreateBooking(ctx context.Context, booking model.Booking) (model.InsertResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return model.InsertResult{}, m.err
	}

	stored := model.Booking{}
	for key, value := range booking {
		stored[key] = value
	}
	id := primitive.NewObjectID()
	stored["_id"] = id
	m.bookings = append(m.bookings, stored)

	return model.InsertResult{Acknowledged: true, InsertedId: id}, nil
}

func (m *memoryBookings) ListBookings(ctx context.Context, email string) ([]model.Booking, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.listCalls++
	if m.err != nil {
		return nil, m.err
	}

	found := []model.Booking{}
	for _, booking := range m.bookings {
		if email == "" || booking.CustomerEmail() == email {
			found = append(found, booking)
		}
	}
	return found, nil
}

func (m *memoryBookings) DeleteBooking(ctx context.Context, id string) (model.DeleteResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	index, err := m.find(id)
	if err != nil {
		return model.DeleteResult{}, err
	}
	if index < 0 {
		return model.DeleteResult{Acknowledged: true}, nil
	}
	m.bookings = append(m.bookings[:index], m.bookings[index+1:]...)
	return model.DeleteResult{Acknowledged: true, DeletedCount: 1}, nil
}

func (m *memoryBookings) UpdateBookingStatus(ctx context.Context, id string, status string) (model.UpdateResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	index, err := m.find(id)
	if err != nil {
		return model.UpdateResult{}, err
	}
	if index < 0 {
		return model.UpdateResult{Acknowledged: true}, nil
	}
	result := model.UpdateResult{Acknowledged: true, MatchedCount: 1}
	if m.bookings[index].Status() != status {
		m.bookings[index][model.BookingStatusField] = status
		result.ModifiedCount = 1
	}
	return result, nil
}

func (m *memoryBookings) find(id string) (int, error) {
	if m.err != nil {
		return -1, m.err
	}
	objId, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return -1, fmt.Errorf("%w: %q", database.ErrInvalidID, id)
	}
	for i, booking := range m.bookings {
		if booking["_id"] == objId {
			return i, nil
		}
	}
	return -1, nil
}

var errStoreDown = errors.New("server selection timeout")
