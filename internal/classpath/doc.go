// Package classpath is an in-memory frontend: a universe of class
// declarations described by YAML manifests, with nominal Java-style typing.
//
// It supports superclasses, interfaces, nested classes, type parameters with
// bounds, parameterized supertypes, wildcards, arrays, primitives and members.
// A Classpath is immutable once loaded and safe for concurrent queries.
//
// Manifest example:
//
//	classes:
//	  - name: com.example.CoffeeMaker
//	    superclass: com.example.Appliance
//	    interfaces: [com.example.Brewer<com.example.Coffee>]
//	    annotations:
//	      - name: javax.inject.Singleton
//	    methods:
//	      - name: brew
//	        returns: void
//	    classes:
//	      - name: Heater
package classpath
