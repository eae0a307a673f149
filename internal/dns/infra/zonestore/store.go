// Package zonestore persists the server façade's registered zone table
// (SOA records plus their timers) to a local Bolt database, so a restarted
// process can repopulate its zones without the operator replaying every
// Zone(...) registration call.
package zonestore

import (
	"encoding/binary"
	"errors"
	"time"

	bbolt "go.etcd.io/bbolt"
	bberrors "go.etcd.io/bbolt/errors"

	"github.com/cepharum/dnsd/internal/dns/domain"
)

var bucketZones = []byte("zones")

// ErrCorruptSnapshot means a stored zone record was shorter than its
// encoding requires.
var ErrCorruptSnapshot = errors.New("zonestore: corrupt zone snapshot")

// Store is a Bolt-backed durable snapshot of registered zones.
type Store struct {
	db *bbolt.DB
}

// Open opens (or creates) a Bolt database at path and ensures the zones
// bucket exists.
func Open(path string) (*Store, error) {
	db, err := bbolt.Open(path, 0o600, &bbolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, err
	}
	if err := db.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(bucketZones)
		return err
	}); err != nil {
		_ = db.Close()
		return nil, err
	}
	return &Store{db: db}, nil
}

func (s *Store) Close() error { return s.db.Close() }

// Put persists zone under its name, overwriting any prior snapshot.
func (s *Store) Put(zone domain.Zone) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		b := tx.Bucket(bucketZones)
		return b.Put([]byte(zone.Name), encodeZone(zone))
	})
}

// Delete removes a previously persisted zone. It is not an error to delete
// a zone that was never stored.
func (s *Store) Delete(name string) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket(bucketZones).Delete([]byte(name))
	})
}

// LoadAll returns every persisted zone, for replay into a server façade's
// zone table at startup.
func (s *Store) LoadAll() ([]domain.Zone, error) {
	var zones []domain.Zone
	err := s.db.View(func(tx *bbolt.Tx) error {
		b := tx.Bucket(bucketZones)
		return b.ForEach(func(k, v []byte) error {
			zone, err := decodeZone(v)
			if err != nil {
				return err
			}
			zones = append(zones, zone)
			return nil
		})
	})
	if err != nil {
		return nil, err
	}
	return zones, nil
}

// Purge removes every persisted zone, recreating an empty bucket.
func (s *Store) Purge() error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		if err := tx.DeleteBucket(bucketZones); err != nil && err != bberrors.ErrBucketNotFound {
			return err
		}
		_, err := tx.CreateBucketIfNotExists(bucketZones)
		return err
	})
}

// encodeZone serializes a Zone's SOA fields into a flat binary record:
// [nameLen:2][name][mnameLen:2][mname][rnameLen:2][rname]
// [serial:4][refresh:4][retry:4][expire:4][negTTL:4][recordTTL:4]
func encodeZone(zone domain.Zone) []byte {
	soa := zone.SOAData()
	name := []byte(zone.Name)
	mname := []byte(soa.MName)
	rname := []byte(soa.RName)

	buf := make([]byte, 2+len(name)+2+len(mname)+2+len(rname)+4*6)
	i := 0
	i += putString(buf[i:], name)
	i += putString(buf[i:], mname)
	i += putString(buf[i:], rname)
	binary.BigEndian.PutUint32(buf[i:], soa.Serial)
	i += 4
	binary.BigEndian.PutUint32(buf[i:], soa.Refresh)
	i += 4
	binary.BigEndian.PutUint32(buf[i:], soa.Retry)
	i += 4
	binary.BigEndian.PutUint32(buf[i:], soa.Expire)
	i += 4
	binary.BigEndian.PutUint32(buf[i:], soa.TTL)
	i += 4
	binary.BigEndian.PutUint32(buf[i:], zone.SOA.TTL)
	return buf
}

func decodeZone(v []byte) (domain.Zone, error) {
	name, v, err := getString(v)
	if err != nil {
		return domain.Zone{}, err
	}
	mname, v, err := getString(v)
	if err != nil {
		return domain.Zone{}, err
	}
	rname, v, err := getString(v)
	if err != nil {
		return domain.Zone{}, err
	}
	if len(v) < 24 {
		return domain.Zone{}, ErrCorruptSnapshot
	}
	soa := domain.SOAData{
		MName:   mname,
		RName:   rname,
		Serial:  binary.BigEndian.Uint32(v[0:4]),
		Refresh: binary.BigEndian.Uint32(v[4:8]),
		Retry:   binary.BigEndian.Uint32(v[8:12]),
		Expire:  binary.BigEndian.Uint32(v[12:16]),
		TTL:     binary.BigEndian.Uint32(v[16:20]),
	}
	recordTTL := binary.BigEndian.Uint32(v[20:24])

	return domain.Zone{
		Name: name,
		SOA:  domain.NewRecord(name, domain.RRClassIN, domain.RRTypeSOA, recordTTL, soa),
	}, nil
}

func putString(buf []byte, s []byte) int {
	binary.BigEndian.PutUint16(buf, uint16(len(s)))
	copy(buf[2:], s)
	return 2 + len(s)
}

func getString(buf []byte) (string, []byte, error) {
	if len(buf) < 2 {
		return "", nil, ErrCorruptSnapshot
	}
	n := int(binary.BigEndian.Uint16(buf))
	if len(buf) < 2+n {
		return "", nil, ErrCorruptSnapshot
	}
	return string(buf[2 : 2+n]), buf[2+n:], nil
}
