package stinfluxdb

// DBParams provides various configuration options for influxDB.
type DBParams struct {
	URL    string
	Org    string
	Token  string
	Bucket string
}

// Valid returns true if all parameters required to write to influxDB are set.
func (p DBParams) Valid() bool {
	return p.URL != "" && p.Org != "" && p.Token != "" && p.Bucket != ""
}
