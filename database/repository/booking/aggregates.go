package bookingRepo

import (
	"fmt"
	"time"

	"servease/models"

	"go.mongodb.org/mongo-driver/bson"
)

// CompletedRevenue sums the total price of completed bookings.
func (r *MongoBookingRepo) CompletedRevenue() (float64, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	pipeline := []bson.M{
		{"$match": bson.M{"status": models.BookingCompleted}},
		{"$group": bson.M{"_id": nil, "total": bson.M{"$sum": "$total_price"}}},
	}

	cursor, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return 0, fmt.Errorf("failed to aggregate revenue: %w", err)
	}
	defer cursor.Close(ctx)

	var result struct {
		Total float64 `bson:"total"`
	}
	if cursor.Next(ctx) {
		if err := cursor.Decode(&result); err != nil {
			return 0, fmt.Errorf("failed to decode revenue aggregate: %w", err)
		}
	}
	return result.Total, nil
}

// TopServiceIDs returns the service IDs with the most accepted or completed
// bookings, most booked first.
func (r *MongoBookingRepo) TopServiceIDs(limit int64) ([]string, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	pipeline := []bson.M{
		{"$match": bson.M{"status": bson.M{"$in": []string{models.BookingAccepted, models.BookingCompleted}}}},
		{"$group": bson.M{"_id": "$service_id", "count": bson.M{"$sum": 1}}},
		{"$sort": bson.M{"count": -1}},
		{"$limit": limit},
	}

	cursor, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate top services: %w", err)
	}
	defer cursor.Close(ctx)

	var ids []string
	for cursor.Next(ctx) {
		var row struct {
			ServiceID string `bson:"_id"`
		}
		if err := cursor.Decode(&row); err != nil {
			return nil, fmt.Errorf("failed to decode top services aggregate: %w", err)
		}
		ids = append(ids, row.ServiceID)
	}
	return ids, nil
}
