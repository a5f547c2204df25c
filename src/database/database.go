package database

import (
	"context"
	"errors"
	"log"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// Collection names
const (
	ScanEventsCollectionName = "scan_events"
	SectionsCollectionName   = "sections"
	StudentsCollectionName   = "students"
)

var (
	client     *mongo.Client
	once       sync.Once // ✅ ป้องกันการรัน ConnectMongoDB() ซ้ำ
	connectErr error

	ScanEventCollection *mongo.Collection
	SectionCollection   *mongo.Collection
	StudentCollection   *mongo.Collection
)

// ConnectMongoDB เชื่อมต่อกับ MongoDB แค่ครั้งเดียว
func ConnectMongoDB(mongoURI, dbName string) error {
	if mongoURI == "" {
		return errors.New("MONGO_URI environment variable not set")
	}

	once.Do(func() { // ✅ Run only once
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		client, connectErr = mongo.Connect(ctx, options.Client().ApplyURI(mongoURI))
		if connectErr != nil {
			return
		}

		// ตรวจสอบการเชื่อมต่อ
		if connectErr = client.Ping(ctx, readpref.Primary()); connectErr != nil {
			return
		}

		db := client.Database(dbName)
		ScanEventCollection = db.Collection(ScanEventsCollectionName)
		SectionCollection = db.Collection(SectionsCollectionName)
		StudentCollection = db.Collection(StudentsCollectionName)

		log.Println("✅ MongoDB connected successfully:", dbName)
	})

	return connectErr
}

// EnsureIndexes สร้าง index ที่ query หลักใช้
func EnsureIndexes(ctx context.Context) error {
	if client == nil {
		return errors.New("MongoDB client is nil")
	}
	if _, err := ScanEventCollection.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "schoolId", Value: 1}, {Key: "section", Value: 1}, {Key: "timestamp", Value: 1}}},
		{Keys: bson.D{{Key: "studentId", Value: 1}, {Key: "timestamp", Value: 1}}},
	}); err != nil {
		return err
	}
	if _, err := SectionCollection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "schoolId", Value: 1}, {Key: "sectionId", Value: 1}},
		Options: options.Index().SetUnique(true),
	}); err != nil {
		return err
	}
	_, err := StudentCollection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "schoolId", Value: 1}, {Key: "studentId", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}

// DisconnectMongoDB ปิดการเชื่อมต่อ
func DisconnectMongoDB(ctx context.Context) error {
	if client == nil {
		return nil
	}
	return client.Disconnect(ctx)
}
