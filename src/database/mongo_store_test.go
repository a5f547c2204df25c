package database

import (
	"testing"
	"time"

	"attendance-sf2/src/models"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestScanFilter(t *testing.T) {
	assert.Equal(t, bson.M{}, ScanFilter(models.ScanQuery{}))

	from := time.Date(2025, time.February, 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 1, 0)
	f := ScanFilter(models.ScanQuery{
		SchoolID:     "SCH001",
		SectionLabel: "7 MABINI",
		StudentIDs:   []string{"a", "b"},
		From:         from,
		To:           to,
	})

	assert.Equal(t, "SCH001", f["schoolId"])
	assert.Equal(t, "7 MABINI", f["section"])
	assert.Equal(t, bson.M{"$in": []string{"a", "b"}}, f["studentId"])
	or, ok := f["$or"].(bson.A)
	if assert.True(t, ok) && assert.Len(t, or, 2) {
		assert.Equal(t, bson.M{"timestamp": bson.M{"$gte": from, "$lt": to}}, or[1])
	}
}

func TestSectionFilter(t *testing.T) {
	f := SectionFilter("", "G7")
	assert.Equal(t, bson.M{"$or": bson.A{bson.M{"sectionId": "G7"}}}, f)

	oid := primitive.NewObjectID()
	f = SectionFilter("SCH001", oid.Hex())
	assert.Equal(t, "SCH001", f["schoolId"])
	assert.Len(t, f["$or"], 2)
}

func TestValidateDriver(t *testing.T) {
	assert.NoError(t, ValidateDriver(DriverMongo))
	assert.NoError(t, ValidateDriver(DriverFirestore))
	assert.Error(t, ValidateDriver("sqlite"))
}
