// Package binding proxies named models to field values held in an external
// flux-style store.
//
// A store is addressed with commands ("mutations") and queries ("getters"),
// both optionally prefixed with a module namespace such as "forms/". The
// package needs two of them:
//
//	setFieldValue   payload {Form, Field, Value}
//	formValues      returns form -> field -> value
//
// MapModels turns definitions like {"email": "signup/email"} into Models with
// Get and Set. The namespace prefix is recomputed on every call from the
// supplied Namespacer, so reconfiguration is picked up without rebuilding
// models. Reading a form the store has never seen yields "".
//
// Two stores are included. MemoryStore keeps everything in process.
// RedisStore keeps one hash per form in Redis and is meant to be shared by
// several processes. Both partition data by the namespace found in the
// command or getter name.
package binding
