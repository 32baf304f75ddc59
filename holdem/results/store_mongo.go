package results

import (
	"github.com/roboholdem/roboholdem/common/log"
	"github.com/roboholdem/roboholdem/common/mongo"
	"go.uber.org/zap"
	"gopkg.in/mgo.v2"
	"gopkg.in/mgo.v2/bson"
)

func NewResultsDBByMongo(hosts []string, dbName string) *ResultsDBByMongo {
	db := &ResultsDBByMongo{
		config: mongo.NewDbConfig(hosts),
		dbName: dbName,

		roundTN:   "round_record",
		sessionTN: "session_result",
	}

	db.migrate()

	return db
}

type ResultsDBByMongo struct {
	config *mgo.DialInfo
	dbName string

	roundTN   string
	sessionTN string
}

func (db *ResultsDBByMongo) SaveRounds(records []RoundRecord) error {
	if len(records) == 0 {
		return nil
	}
	objs := make([]interface{}, len(records))
	for i, r := range records {
		objs[i] = r
	}

	rCollection := db.getDB().C(db.roundTN)
	if err := rCollection.Insert(objs...); err != nil {
		// 插入失败则删除已插入的数据
		if _, dErr := rCollection.RemoveAll(bson.M{"gameid": records[0].GameID}); dErr != nil {
			log.L.Error("remove insert failed rounds failed", zap.Error(dErr), zap.Error(err))
		}
		return err
	}
	return nil
}

func (db *ResultsDBByMongo) SaveSession(result SessionResult) error {
	return db.getDB().C(db.sessionTN).Insert(result)
}

func (db *ResultsDBByMongo) GetRoundsByGame(gameID int64) (records []RoundRecord) {
	db.getDB().C(db.roundTN).Find(bson.M{"gameid": gameID}).Sort("round").All(&records)
	return
}

func (db *ResultsDBByMongo) GetSessionsByParticipant(participantID string) (result []SessionResult) {
	db.getDB().C(db.sessionTN).Find(bson.M{"participantid": participantID}).All(&result)
	return
}

func (db *ResultsDBByMongo) getDB() *mgo.Database {
	return mongo.GetDB(db.config).DB(db.dbName)
}

func (db *ResultsDBByMongo) migrate() {
	db.getDB().C(db.roundTN).EnsureIndex(mgo.Index{Key: []string{"gameid", "round"}, Unique: true})
	db.getDB().C(db.roundTN).EnsureIndex(mgo.Index{Key: []string{"gameid"}})

	db.getDB().C(db.sessionTN).EnsureIndex(mgo.Index{Key: []string{"gameid"}, Unique: true})
	db.getDB().C(db.sessionTN).EnsureIndex(mgo.Index{Key: []string{"participantid"}})
}

func (db *ResultsDBByMongo) ClearTestData() {
	mongo.ClearAllData(db.config, db.dbName)
}
