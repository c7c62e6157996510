package mongostore

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/metas4dx/metas-4dx-api/infrastructure/storage"
)

const opTimeout = 30 * time.Second

// Store implementa o Gateway sobre um document store remoto (MongoDB):
// uma collection por coleção lógica, documentos planos com uma string por
// coluna e um campo "seq" preservando a ordem de inserção. WriteAll
// substitui todos os documentos da collection.
type Store struct {
	db *mongo.Database
}

func New(uri, database string) (*Store, error) {
	client, err := mongo.Connect(options.Client().ApplyURI(uri))
	if err != nil {
		return nil, errors.Wrap(err, "erro ao conectar ao MongoDB")
	}

	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()

	if err := client.Ping(ctx, nil); err != nil {
		return nil, errors.Wrap(err, "erro ao testar conexão com MongoDB")
	}

	return &Store{db: client.Database(database)}, nil
}

func (s *Store) Close(ctx context.Context) error {
	return s.db.Client().Disconnect(ctx)
}

func (s *Store) Read(ctx context.Context, col storage.Collection) ([]storage.Row, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	cursor, err := s.db.Collection(col.Name).Find(
		ctx,
		bson.M{},
		options.Find().SetSort(bson.D{{Key: "seq", Value: 1}}),
	)
	if err != nil {
		return nil, errors.Wrapf(err, "erro ao ler coleção %s", col.Name)
	}
	defer cursor.Close(ctx)

	var docs []bson.M
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, errors.Wrapf(err, "erro ao decodificar coleção %s", col.Name)
	}

	rows := make([]storage.Row, 0, len(docs))
	for _, doc := range docs {
		row := storage.Row{}
		for _, column := range col.Columns {
			if value, ok := doc[column].(string); ok {
				row[column] = value
			}
		}
		rows = append(rows, row)
	}

	return rows, nil
}

func (s *Store) WriteAll(ctx context.Context, col storage.Collection, rows []storage.Row) error {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	collection := s.db.Collection(col.Name)

	if _, err := collection.DeleteMany(ctx, bson.M{}); err != nil {
		return errors.Wrapf(err, "erro ao limpar coleção %s", col.Name)
	}

	if len(rows) == 0 {
		return nil
	}

	docs := make([]interface{}, 0, len(rows))
	for i, row := range rows {
		doc := bson.M{"seq": i}
		for _, column := range col.Columns {
			doc[column] = row[column]
		}
		docs = append(docs, doc)
	}

	if _, err := collection.InsertMany(ctx, docs); err != nil {
		return errors.Wrapf(err, "erro ao gravar coleção %s", col.Name)
	}

	return nil
}

func (s *Store) Exists(ctx context.Context, col storage.Collection) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	names, err := s.db.ListCollectionNames(ctx, bson.M{"name": col.Name})
	if err != nil {
		return false, errors.Wrapf(err, "erro ao verificar coleção %s", col.Name)
	}

	return len(names) > 0, nil
}
