package mcdb

import "github.com/blockvault/mcworld"

// OpenWorld opens the database at dir and wraps it directly in a
// *mcworld.World, for callers that have no use for the raw DB handle on its
// own.
func OpenWorld(dir string) (*mcworld.World, error) {
	var conf Config
	return conf.OpenWorld(dir)
}

// OpenWorld opens the database at dir with conf and wraps it in a
// *mcworld.World. The World's own Config is derived from conf's Log so
// that both layers log through the same logger.
func (conf Config) OpenWorld(dir string) (*mcworld.World, error) {
	db, err := conf.Open(dir)
	if err != nil {
		return nil, err
	}
	return mcworld.New(db, mcworld.Config{Log: conf.Log}), nil
}
