package schema

import "github.com/ONSdigital/dp-kafka/v4/avro"

var applicationLifecycle = `{
  "type": "record",
  "name": "application-lifecycle",
  "fields": [
    {"name": "event_type",     "type": "string", "default": ""},
    {"name": "application_id", "type": "string", "default": ""},
    {"name": "public_no",      "type": "long",   "default": 0},
    {"name": "user_id",        "type": "string", "default": ""},
    {"name": "email",          "type": "string", "default": ""},
    {"name": "status",         "type": "string", "default": ""},
    {"name": "decided_by",     "type": "string", "default": ""},
    {"name": "occurred_at",    "type": "string", "default": ""}
  ]
}`

// ApplicationLifecycleEvent the Avro schema for messages announcing application submissions and decisions.
var ApplicationLifecycleEvent = &avro.Schema{
	Definition: applicationLifecycle,
}
